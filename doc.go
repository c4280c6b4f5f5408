// Package calculator implements the brain of a reverse Polish notation
// calculator.
//
// Operands, variables, and operations are pushed onto a program in the order
// a user presses keys: "3 4 +" is 3 plus 4. After every push, the whole
// program is evaluated again from the top of the stack downward, so the
// result is always that of the most recently completed expression. Older
// expressions stay on the stack and show up in the description, which
// renders the program in ordinary infix notation like "(2+3)×4,7".
//
// Variables let you build a program once and evaluate it for many inputs,
// e.g. to plot it; see package plot.
package calculator
