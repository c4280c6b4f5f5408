package calculator

import (
	"strings"
)

// Describe renders the program in infix notation with only the parentheses
// that precedence requires. Each complete expression on the stack appears as
// a separate comma-separated entry, the most recently pushed first. Missing
// operands appear as "?", and so does an empty program.
func (b *Brain) Describe() string {
	var s strings.Builder
	end := len(b.program)
	for {
		end = describe(&s, b.program, end)
		if end <= 0 {
			break
		}
		s.WriteByte(',')
	}
	return s.String()
}

// describe writes the expression ending at program[end-1] to s and returns the
// start of the ops it did not consume.
func describe(s *strings.Builder, program []Op, end int) int {
	t, rest := term(program, end)
	t.fmt(s)
	return rest
}

// expr is a rendered subexpression. Rendering happens right to left, so the
// tree is built before anything is written.
type expr struct {
	op    Op
	left  *expr
	right *expr
	// missing marks a placeholder for an operand that isn't on the stack.
	missing bool
}

// term builds the expression that ends at program[end-1].
func term(program []Op, end int) (*expr, int) {
	if end <= 0 {
		return &expr{missing: true, op: Op{prec: PrecAtomic}}, 0
	}
	op := program[end-1]
	rest := end - 1
	switch op.kind {
	case OpOperand, OpVariable, OpConstant:
		return &expr{op: op}, rest
	case OpUnary:
		x, rest := term(program, rest)
		return &expr{op: op, right: x}, rest
	case OpBinary:
		r, rest := term(program, rest)
		l, rest := term(program, rest)
		return &expr{op: op, left: l, right: r}, rest
	default:
		panic("calculator: invalid op kind " + op.kind.String())
	}
}

func (e *expr) prec() int {
	return e.op.prec
}

func (e *expr) fmt(s *strings.Builder) {
	if e.missing {
		s.WriteByte('?')
		return
	}
	switch e.op.kind {
	case OpOperand, OpVariable, OpConstant:
		s.WriteString(e.op.Symbol())
	case OpUnary:
		s.WriteString(e.op.symbol)
		e.right.fmtin(s, e.right.prec() < e.prec())
	case OpBinary:
		e.left.fmtin(s, e.left.prec() < e.prec())
		s.WriteString(e.op.symbol)
		// a−(b−c) and a÷(b÷c) need their brackets even though the
		// precedences are equal.
		if commutes(e.op.symbol) {
			e.right.fmtin(s, e.right.prec() < e.prec())
		} else {
			e.right.fmtin(s, e.right.prec() <= e.prec())
		}
	}
}

// fmtin writes e, wrapped if paren is true.
func (e *expr) fmtin(s *strings.Builder, paren bool) {
	if !paren {
		e.fmt(s)
		return
	}
	s.WriteByte('(')
	e.fmt(s)
	s.WriteByte(')')
}
