package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// MaxValue bounds every component of an expression and every evaluated total.
const MaxValue = 255

// Expression represents a parsed dice expression ready to be rolled.
//
// Invariant: 0 <= Count, Sides, Modifier <= MaxValue; Sides >= 1 when Count > 0.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat bonus; holds the whole value when Constant is set
	Constant bool   // the input was a bare integer
}

// Parse parses a dice expression string into an Expression.
//
// Supported forms: "3d6", "2d4+1", "3d6 + 2", and bare integers such as "5".
// Input that does not match "<count>d<sides>[+<modifier>]" is read as a bare
// integer.
//
// Precondition: none; any string is accepted.
// Postcondition: Returns a valid Expression, or an error wrapping
// fault.ErrDataFormat.
func Parse(expr string) (Expression, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return Expression{}, fmt.Errorf("%w: empty dice expression", fault.ErrDataFormat)
	}

	if count, sides, mod, ok := scanDice(s); ok {
		c, err := component(expr, "die count", count)
		if err != nil {
			return Expression{}, err
		}
		sd, err := component(expr, "die sides", sides)
		if err != nil {
			return Expression{}, err
		}
		m := 0
		if mod != "" {
			m, err = component(expr, "modifier", mod)
			if err != nil {
				return Expression{}, err
			}
		}
		if sd == 0 && c > 0 {
			return Expression{}, fmt.Errorf("%w: die sides in %q must be >= 1", fault.ErrDataFormat, expr)
		}
		return Expression{Raw: expr, Count: c, Sides: sd, Modifier: m}, nil
	}

	v, err := component(expr, "integer", s)
	if err != nil {
		return Expression{}, err
	}
	return Expression{Raw: expr, Modifier: v, Constant: true}, nil
}

// scanDice matches s against "<digits>d<digits>[ws+ws<digits>]" in full.
func scanDice(s string) (count, sides, mod string, ok bool) {
	sc := scanner{s: s}
	if count = sc.digits(); count == "" || !sc.accept('d') {
		return "", "", "", false
	}
	if sides = sc.digits(); sides == "" {
		return "", "", "", false
	}
	mark := sc.pos
	sc.spaces()
	if sc.accept('+') {
		sc.spaces()
		if mod = sc.digits(); mod == "" {
			return "", "", "", false
		}
	} else {
		sc.pos = mark
	}
	if !sc.done() {
		return "", "", "", false
	}
	return count, sides, mod, true
}

func component(expr, what, digits string) (int, error) {
	v, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s in %q: %v", fault.ErrDataFormat, what, expr, err)
	}
	return int(v), nil
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) digits() string {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

func (sc *scanner) spaces() {
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *scanner) accept(c byte) bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

func (sc *scanner) done() bool {
	return sc.pos == len(sc.s)
}
