package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpString(t *testing.T) {
	cases := []struct {
		op   Op
		kind string
		s    string
	}{
		{Operand(2), "OpOperand", "2"},
		{Operand(-0.125), "OpOperand", "-0.125"},
		{Operand(math.Inf(1)), "OpOperand", "+Inf"},
		{Variable("M"), "OpVariable", "M"},
		{Unary("√", PrecUnary, math.Sqrt), "OpUnary", "√"},
		{Binary("+", PrecAdditive, func(x, y float64) float64 { return y + x }), "OpBinary", "+"},
		{Constant("π", math.Pi), "OpConstant", "π"},
		{Op{}, "OpNone", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.op.Kind().String())
		assert.Equal(t, c.s, c.op.String())
	}
	assert.Equal(t, "OpKind(9)", OpKind(9).String())
}

func TestOpNilFunc(t *testing.T) {
	assert.Panics(t, func() { Unary("f", PrecUnary, nil) })
	assert.Panics(t, func() { Binary("g", PrecAdditive, nil) })
}

func TestDefaultOps(t *testing.T) {
	b := NewBrain()
	assert.Len(t, b.ops, len(defaultops))
	pi, _ := b.Lookup("π")
	assert.Equal(t, math.Pi, pi.value)
	assert.True(t, commutes("+"))
	assert.True(t, commutes("×"))
	assert.False(t, commutes("−"))
	assert.False(t, commutes("÷"))
}

func TestEvaluateRest(t *testing.T) {
	b := NewBrain()
	b.SetProgram([]string{"1", "2", "3", "+", "4"})
	_, _, rest := evaluate(b.program, len(b.program), nil)
	assert.Equal(t, 4, rest)
	_, _, rest = evaluate(b.program, rest, nil)
	assert.Equal(t, 1, rest)
	_, _, rest = evaluate(b.program, rest, nil)
	assert.Equal(t, 0, rest)
}
