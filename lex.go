package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a literal.
	tokenNum
	// tokenIdent is a variable or operation name.
	tokenIdent
	// tokenOp is a single-rune operation key.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the runes which are always keys on their own, even
// without surrounding whitespace.
const Operators = "+-−*×/÷√±"

// Aliases maps names that are easy to type to the symbols of the default
// operations. ReadProgram applies them.
var Aliases = map[string]string{
	"-":    "−",
	"*":    "×",
	"/":    "÷",
	"sqrt": "√",
	"neg":  "±",
	"pi":   "π",
}

// ReadOption is an option for ReadProgram.
type ReadOption interface {
	readOption(*readctx)
}

type readctx struct {
	// wseof is a string containing the whitespace characters that end the
	// program.
	wseof string
}

type eofopt string

func (o eofopt) readOption(r *readctx) {
	r.wseof = string(o)
}

// StopOn tells ReadProgram to treat a list of whitespace characters as ending
// the program, e.g. StopOn('\n') to read one program per line. Panics if any
// rune is not whitespace. With no arguments, StopOn produces the default
// behavior, which is to read to EOF.
func StopOn(chars ...rune) ReadOption {
	var b strings.Builder
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("calculator: cannot stop on " + strconv.QuoteRune(r))
		}
		if !strings.ContainsRune(b.String(), r) {
			b.WriteRune(r)
		}
	}
	return eofopt(b.String())
}

// ReadProgram reads a sequence of key presses from src, in the order they
// would be pressed on a calculator, and returns their symbols in a form
// suitable for SetProgram. Numbers, names, and operator keys may be separated
// by whitespace; operator keys need not be. Names in Aliases are replaced.
// The error is a *LexError for invalid input, or any error from src other
// than io.EOF.
func ReadProgram(src io.RuneScanner, opts ...ReadOption) ([]string, error) {
	var r readctx
	for _, opt := range opts {
		opt.readOption(&r)
	}
	l := lex(src)
	var symbols []string
	for {
		tok, err := l.next(r.wseof)
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return symbols, nil
		}
		s := tok.text
		if a, ok := Aliases[s]; ok && tok.kind != tokenNum {
			s = a
		}
		symbols = append(symbols, s)
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, the result is an empty token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

func (l *lexer) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(Operators, r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return l.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return l.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error("number")
		}
	}
	if (!dig && !ed) || (e && !ed) {
		return l.error("number")
	}
	return nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid key in the input.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

// Pos returns the position of the error as the number of runes up to and
// including the rune that caused the error.
func (err *LexError) Pos() int {
	return err.Col
}
