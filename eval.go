package calculator

import (
	"strconv"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Brain is a stack calculator. Operands and operations are pushed onto a
// program in postfix order, and the whole program is reevaluated after every
// push. A Brain is not safe to use concurrently.
type Brain struct {
	program []Op
	ops     registry
	names   map[string]float64
	log     logger.Logger
}

// Option is an option used when creating a brain.
type Option interface {
	brainOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	learnopt Op
	logopt   struct {
		l logger.Logger
	}
)

func (varopt) brainOption()   {}
func (varsopt) brainOption()  {}
func (learnopt) brainOption() {}
func (logopt) brainOption()   {}

// SetVar binds a variable in the brain.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars binds any number of variables in the brain.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// LearnOp adds an operation to the brain's known operations, replacing any
// operation with the same symbol. Operands and variables are not operations;
// learning one panics.
func LearnOp(op Op) Option {
	switch op.kind {
	case OpUnary, OpBinary, OpConstant:
	default:
		panic("calculator: cannot learn " + op.kind.String() + " " + strconv.Quote(op.Symbol()))
	}
	return learnopt(op)
}

// WithLogger sets the logger the brain traces evaluations to. The default is
// logger.Default().
func WithLogger(l logger.Logger) Option {
	return logopt{l}
}

// NewBrain creates a calculator with an empty program and the default
// operations: + − × ÷ √ ± sin cos π e.
func NewBrain(opts ...Option) *Brain {
	b := Brain{ops: make(registry, len(defaultops))}
	for _, op := range defaultops {
		b.ops.learn(op)
	}
	return b.Clone(opts...)
}

// Clone creates a copy of a brain, including its program and variables, and
// applies options to it. Operations learned through opts are known only to
// the copy.
func (b *Brain) Clone(opts ...Option) *Brain {
	n := Brain{
		program: make([]Op, len(b.program)),
		ops:     b.ops,
		names:   make(map[string]float64, len(b.names)),
		log:     b.log,
	}
	copy(n.program, b.program)
	for name, val := range b.names {
		n.names[name] = val
	}
	learned := false
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		case learnopt:
			if !learned {
				// Copy on first write so the original registry never changes.
				ops := make(registry, len(n.ops)+1)
				for k, v := range n.ops {
					ops[k] = v
				}
				n.ops = ops
				learned = true
			}
			n.ops.learn(Op(opt))
		case logopt:
			n.log = opt.l
		default:
			panic("calculator: unknown option type")
		}
	}
	if n.log == nil {
		n.log = logger.Default()
	}
	return &n
}

// PushOperand pushes a literal and returns the new result.
func (b *Brain) PushOperand(v float64) (float64, bool) {
	b.program = append(b.program, Operand(v))
	return b.Evaluate()
}

// PushVariable pushes a reference to a variable and returns the new result.
// The variable need not be bound yet.
func (b *Brain) PushVariable(name string) (float64, bool) {
	b.program = append(b.program, Variable(name))
	return b.Evaluate()
}

// PerformOperation pushes the known operation with the given symbol and
// returns the new result. If there is no such operation, the program is
// unchanged.
func (b *Brain) PerformOperation(symbol string) (float64, bool) {
	if op, ok := b.ops.Lookup(symbol); ok {
		b.program = append(b.program, op)
	}
	return b.Evaluate()
}

// Lookup returns the known operation with the given symbol.
func (b *Brain) Lookup(symbol string) (Op, bool) {
	return b.ops.Lookup(symbol)
}

// Evaluate evaluates the program with the current variables. The result is
// that of the most recently pushed complete expression; anything older is
// ignored. ok is false if that expression is incomplete or refers to an
// unbound variable. Evaluate does not modify the brain.
func (b *Brain) Evaluate() (result float64, ok bool) {
	r, ok, rest := evaluate(b.program, len(b.program), b.names)
	if b.log != nil && b.log.Level() >= logger.LevelTrace {
		b.log.Tracef("%v = %v (%t) with %d left over", b.program, r, ok, rest)
	}
	return r, ok
}

// evaluate evaluates the expression formed by the ops in program[:end] which
// ends at end-1. It returns the result, whether there was one, and the index
// just after the last op not consumed, so that program[:rest] holds the ops
// older than the expression.
func evaluate(program []Op, end int, names map[string]float64) (r float64, ok bool, rest int) {
	if end <= 0 {
		return 0, false, 0
	}
	op := program[end-1]
	rest = end - 1
	switch op.kind {
	case OpOperand, OpConstant:
		return op.value, true, rest
	case OpVariable:
		v, ok := names[op.symbol]
		return v, ok, rest
	case OpUnary:
		x, ok, rest := evaluate(program, rest, names)
		if !ok {
			return 0, false, rest
		}
		return op.unary(x), true, rest
	case OpBinary:
		x, ok, rest := evaluate(program, rest, names)
		if !ok {
			return 0, false, rest
		}
		y, ok, rest := evaluate(program, rest, names)
		if !ok {
			return 0, false, rest
		}
		return op.binary(x, y), true, rest
	default:
		panic("calculator: invalid op kind " + op.kind.String())
	}
}

// Set binds a variable. Set does not change the program.
func (b *Brain) Set(name string, val float64) {
	if b.names == nil {
		b.names = make(map[string]float64)
	}
	b.names[name] = val
}

// Unset removes a variable binding.
func (b *Brain) Unset(name string) {
	delete(b.names, name)
}

// Var returns the value bound to a variable.
func (b *Brain) Var(name string) (float64, bool) {
	v, ok := b.names[name]
	return v, ok
}

// Len returns the number of ops in the program.
func (b *Brain) Len() int {
	return len(b.program)
}

// ResetProgram clears the program. Variables are unchanged.
func (b *Brain) ResetProgram() {
	b.program = b.program[:0]
}

// ResetVariables clears all variable bindings. The program is unchanged.
func (b *Brain) ResetVariables() {
	for k := range b.names {
		delete(b.names, k)
	}
}

// ResetAll clears both the program and the variables.
func (b *Brain) ResetAll() {
	b.ResetProgram()
	b.ResetVariables()
}

// Program returns the symbols of the ops in the program, oldest first. The
// result can be passed to SetProgram, including on another brain.
func (b *Brain) Program() []string {
	r := make([]string, len(b.program))
	for i, op := range b.program {
		r[i] = op.Symbol()
	}
	return r
}

// SetProgram replaces the program. Each symbol names a known operation if
// there is one, otherwise a literal if it parses as a number, otherwise a
// variable.
func (b *Brain) SetProgram(symbols []string) {
	b.program = b.program[:0]
	for _, s := range symbols {
		if op, ok := b.ops.Lookup(s); ok {
			b.program = append(b.program, op)
			continue
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			b.program = append(b.program, Operand(v))
			continue
		}
		b.program = append(b.program, Variable(s))
	}
}
