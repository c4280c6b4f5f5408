// Package plot samples calculator programs as functions of one variable.
package plot

import (
	"math"
)

// Evaluator is a program of variables. *calculator.Brain is an Evaluator.
type Evaluator interface {
	// Set binds a variable.
	Set(name string, v float64)
	// Evaluate evaluates the program with the current bindings.
	Evaluate() (float64, bool)
}

// Point is a point on a graph.
type Point struct {
	X, Y float64
}

// Points samples e as a function of the variable name over [from, to],
// stepping by step, which defaults to 1 if it is not positive. The negative
// and non-negative parts of the range are sampled separately, each starting
// from its lower bound, so that x = 0 is always a sample point when the range
// contains it. Samples where e has no result or a result that is NaN or
// infinite are omitted. Points leaves name bound to the last sampled x.
func Points(e Evaluator, name string, from, to, step float64) []Point {
	if step <= 0 || math.IsNaN(step) {
		step = 1
	}
	if from > to {
		from, to = to, from
	}
	var r []Point
	if from < 0 {
		r = sample(r, e, name, from, math.Min(to, 0), step)
	}
	if to >= 0 {
		lo := math.Max(from, 0)
		if len(r) > 0 && lo == 0 && r[len(r)-1].X == 0 {
			// The negative part ended exactly on zero already.
			lo += step
		}
		r = sample(r, e, name, lo, to, step)
	}
	return r
}

func sample(r []Point, e Evaluator, name string, from, to, step float64) []Point {
	if from > to || math.IsInf(from, 0) || math.IsInf(to, 0) || math.IsNaN(from) || math.IsNaN(to) {
		return r
	}
	n := int(math.Floor((to-from)/step + 1e-9))
	for i := 0; i <= n; i++ {
		x := from + float64(i)*step
		e.Set(name, x)
		y, ok := e.Evaluate()
		if !ok || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		r = append(r, Point{X: x, Y: y})
	}
	return r
}
