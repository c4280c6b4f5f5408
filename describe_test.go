package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/calculator"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "?"},
		{"num", "3", "3"},
		{"frac", "2.5", "2.5"},
		{"big", "1e21", "1e+21"},
		{"var", "M", "M"},
		{"const", "π", "π"},
		{"add", "3 4 +", "3+4"},
		{"mul-add", "2 3 × 4 +", "2×3+4"},
		{"add-mul", "2 3 + 4 ×", "(2+3)×4"},
		{"add-rhs-mul", "2 3 4 × +", "2+3×4"},
		{"mul-rhs-add", "2 3 4 + ×", "2×(3+4)"},
		{"add-add", "2 3 4 + +", "2+3+4"},
		{"sub-sub", "5 3 − 2 −", "5−3−2"},
		{"sub-nested", "5 3 2 − −", "5−(3−2)"},
		{"div-nested", "8 4 2 ÷ ÷", "8÷(4÷2)"},
		{"div-mul", "8 4 2 × ÷", "8÷(4×2)"},
		{"mul-div", "8 4 2 ÷ ×", "8×4÷2"},
		{"sub-add", "5 3 2 + −", "5−(3+2)"},
		{"sqrt", "4 √", "√4"},
		{"sqrt-sum", "3 4 + √", "√(3+4)"},
		{"sqrt-sqrt", "16 √ √", "√√16"},
		{"neg", "1.5 ±", "±1.5"},
		{"neg-prod", "x π × ±", "±(x×π)"},
		{"trig", "3 sin 4 cos +", "sin3+cos4"},
		{"unary-in-binary", "4 √ 2 ×", "√4×2"},
		{"missing", "+", "?+?"},
		{"missing-lhs", "3 +", "?+3"},
		{"missing-unary", "√", "√?"},
		{"two", "3 4", "4,3"},
		{"expr-then-num", "3 4 + 5", "5,3+4"},
		{"three", "1 2 + x sin 7", "7,sinx,1+2"},
		{"history", "x 1 + sin 1 2 +", "1+2,sin(x+1)"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, load(c.src).Describe())
		})
	}
}

func TestDescribeAfterPush(t *testing.T) {
	b := calculator.NewBrain()
	steps := []struct {
		push func()
		want string
	}{
		{func() { b.PushOperand(2) }, "2"},
		{func() { b.PushOperand(3) }, "3,2"},
		{func() { b.PerformOperation("+") }, "2+3"},
		{func() { b.PushOperand(4) }, "4,2+3"},
		{func() { b.PerformOperation("×") }, "(2+3)×4"},
		{func() { b.PerformOperation("nope") }, "(2+3)×4"},
		{func() { b.PushVariable("M") }, "M,(2+3)×4"},
	}
	for _, s := range steps {
		s.push()
		assert.Equal(t, s.want, b.Describe())
	}
}
