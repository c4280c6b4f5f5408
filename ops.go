package calculator

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Op is a single entry on a calculator's stack: an operand, a variable
// reference, or an operation.
type Op struct {
	kind OpKind

	// symbol is the key label for operations and the name for variables.
	symbol string
	// prec is the binding strength used to decide parenthesization.
	prec int
	// value is the literal for operands and constants.
	value float64

	unary  func(float64) float64
	binary func(x, y float64) float64
}

// OpKind identifies the variant of an Op.
type OpKind int8

const (
	OpNone OpKind = iota

	OpOperand  // literal value
	OpVariable // lookup(symbol)
	OpUnary    // f(pop)
	OpBinary   // f(pop, pop)
	OpConstant // named literal, no operands
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=OpKind

// Precedences of the default operations. Atomic ops (operands, variables,
// constants) always bind tightest.
const (
	PrecAdditive       = 1
	PrecMultiplicative = 2
	PrecUnary          = 3
	PrecAtomic         = math.MaxInt32
)

// Operand creates an op that pushes a literal value.
func Operand(v float64) Op {
	return Op{kind: OpOperand, value: v, prec: PrecAtomic}
}

// Variable creates an op that pushes the value bound to name at evaluation
// time.
func Variable(name string) Op {
	return Op{kind: OpVariable, symbol: name, prec: PrecAtomic}
}

// Unary creates an operation of one operand. Panics if f is nil.
func Unary(symbol string, prec int, f func(float64) float64) Op {
	if f == nil {
		panic("calculator: nil function for unary " + strconv.Quote(symbol))
	}
	return Op{kind: OpUnary, symbol: symbol, prec: prec, unary: f}
}

// Binary creates an operation of two operands. f is called with the operand
// nearest the top of the stack first, so that for the program "a b op", f
// receives (b, a). Panics if f is nil.
func Binary(symbol string, prec int, f func(x, y float64) float64) Op {
	if f == nil {
		panic("calculator: nil function for binary " + strconv.Quote(symbol))
	}
	return Op{kind: OpBinary, symbol: symbol, prec: prec, binary: f}
}

// Constant creates a named constant.
func Constant(symbol string, v float64) Op {
	return Op{kind: OpConstant, symbol: symbol, value: v, prec: PrecAtomic}
}

// Kind returns the variant of the op.
func (op Op) Kind() OpKind {
	return op.kind
}

// Symbol returns the key label of the op. For operands, it is the formatted
// value.
func (op Op) Symbol() string {
	if op.kind == OpOperand {
		return formatNum(op.value)
	}
	return op.symbol
}

// Precedence returns the binding strength of the op.
func (op Op) Precedence() int {
	return op.prec
}

func (op Op) String() string {
	return op.Symbol()
}

// formatNum formats v with the fewest digits that parse back to v.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// registry maps key labels to operations. It is never modified after the
// brain that owns it is created.
type registry map[string]Op

// Lookup finds a registered operation.
func (r registry) Lookup(symbol string) (Op, bool) {
	op, ok := r[symbol]
	return op, ok
}

func (r registry) learn(op Op) {
	r[op.symbol] = op
}

var defaultops = []Op{
	Binary("+", PrecAdditive, func(x, y float64) float64 { return y + x }),
	Binary("−", PrecAdditive, func(x, y float64) float64 { return y - x }),
	Binary("×", PrecMultiplicative, func(x, y float64) float64 { return y * x }),
	Binary("÷", PrecMultiplicative, func(x, y float64) float64 { return y / x }),
	Unary("√", PrecUnary, math.Sqrt),
	Unary("±", PrecUnary, func(x float64) float64 { return -x }),
	Unary("sin", PrecUnary, math.Sin),
	Unary("cos", PrecUnary, math.Cos),
	Constant("π", constant(bigfloat.Pi)),
	Constant("e", constant(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(out.Prec()).SetFloat64(1)
		return bigfloat.Exp(out, &one)
	})),
}

// constant computes a constant well beyond float64 precision and rounds it to
// the nearest float64.
func constant(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(128)
	f(r)
	v, _ := r.Float64()
	return v
}

// commutes reports whether swapping the operands of a binary op cannot change
// its result, as far as rendering is concerned.
func commutes(symbol string) bool {
	switch symbol {
	case "+", "×":
		return true
	}
	return false
}
