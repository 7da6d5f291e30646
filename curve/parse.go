package curve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ErrSyntax is wrapped by all errors returned from Parse.
var ErrSyntax = errors.New("invalid timing function")

// Parse reads a CSS timing function, either an easing keyword or
// a cubic-bezier(…) function. The x-coordinates of Bézier control points
// have to be in [0, 1].
func Parse(s string) (Curve, error) {
	toks := tokens(s)
	if len(toks) == 0 {
		return Curve{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	first := toks[0]
	switch first.Type {
	case scanner.TokenIdent:
		if len(toks) > 1 {
			return Curve{}, fmt.Errorf("%w: unexpected %q after keyword", ErrSyntax, toks[1].Value)
		}
		name := strings.ToLower(first.Value)
		if !keywords[name] {
			return Curve{}, fmt.Errorf("%w: unknown keyword %q", ErrSyntax, first.Value)
		}
		return Keyword(name), nil
	case scanner.TokenFunction:
		if !strings.EqualFold(first.Value, "cubic-bezier(") {
			return Curve{}, fmt.Errorf("%w: unsupported function %q", ErrSyntax, first.Value)
		}
		args, err := numbers(toks[1:])
		if err != nil {
			return Curve{}, err
		}
		if len(args) != 4 {
			return Curve{}, fmt.Errorf("%w: cubic-bezier takes 4 arguments, have %d", ErrSyntax, len(args))
		}
		for _, x := range []float64{args[0], args[2]} {
			if x < 0 || x > 1 {
				return Curve{}, fmt.Errorf("%w: x-coordinate %v out of range [0, 1]", ErrSyntax, x)
			}
		}
		c := Bezier(args[0], args[1], args[2], args[3])
		tracer().Debugf("parsed timing function %s", c)
		return c, nil
	}
	return Curve{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, first.Value)
}

// tokens scans s, dropping whitespace and comments.
func tokens(s string) []*scanner.Token {
	var toks []*scanner.Token
	sc := scanner.New(s)
	for {
		tok := sc.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			if tok.Type == scanner.TokenError {
				toks = append(toks, tok)
			}
			return toks
		case scanner.TokenS, scanner.TokenComment:
			continue
		}
		toks = append(toks, tok)
	}
}

// numbers reads a comma-separated argument list up to the closing parenthesis.
func numbers(toks []*scanner.Token) ([]float64, error) {
	var args []float64
	sign, expectNumber := "", true
	for i, tok := range toks {
		switch {
		case tok.Type == scanner.TokenNumber && expectNumber:
			x, err := strconv.ParseFloat(sign+tok.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			args = append(args, x)
			sign, expectNumber = "", false
		case tok.Type == scanner.TokenChar && expectNumber && sign == "" && (tok.Value == "-" || tok.Value == "+"):
			sign = tok.Value
		case tok.Type == scanner.TokenChar && tok.Value == "," && !expectNumber:
			expectNumber = true
		case tok.Type == scanner.TokenChar && tok.Value == ")" && !expectNumber:
			if i != len(toks)-1 {
				return nil, fmt.Errorf("%w: unexpected %q after ')'", ErrSyntax, toks[i+1].Value)
			}
			return args, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, tok.Value)
		}
	}
	return nil, fmt.Errorf("%w: missing ')'", ErrSyntax)
}
