package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuoteString renders value as a double-quoted Python string literal,
// escaping backslashes, double quotes, and line-break/tab characters.
func QuoteString(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// UnquoteString reverses QuoteString. It exists so the resolver's literal
// formatting stays round-trippable; anything that is not a QuoteString
// result is an error.
func UnquoteString(literal string) (string, error) {
	if len(literal) < 2 || literal[0] != '"' || literal[len(literal)-1] != '"' {
		return "", fmt.Errorf("not a quoted string literal: %q", literal)
	}
	body := literal[1 : len(literal)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			if c == '"' {
				return "", fmt.Errorf("unescaped quote inside literal: %q", literal)
			}
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("dangling escape in literal: %q", literal)
		}
		switch body[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", fmt.Errorf("unknown escape \\%c in literal: %q", body[i], literal)
		}
	}
	return b.String(), nil
}

// TripleQuote renders value as a triple-quoted Python string literal with
// backslashes and triple-quote runs escaped. A lone trailing quote is also
// escaped so it cannot merge with the closing delimiter.
func TripleQuote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"""`, `\"\"\"`)
	if hasUnescapedTrailingQuote(escaped) {
		escaped = escaped[:len(escaped)-1] + `\"`
	}
	return `"""` + escaped + `"""`
}

// hasUnescapedTrailingQuote reports whether s ends in a quote that is not
// itself escaped. Backslash doubling leaves real backslashes in pairs, so an
// odd run before the final quote means the quote already carries an escape.
func hasUnescapedTrailingQuote(s string) bool {
	if !strings.HasSuffix(s, `"`) {
		return false
	}
	run := 0
	for i := len(s) - 2; i >= 0 && s[i] == '\\'; i-- {
		run++
	}
	return run%2 == 0
}

// UnTripleQuote reverses TripleQuote.
func UnTripleQuote(literal string) (string, error) {
	if len(literal) < 6 || !strings.HasPrefix(literal, `"""`) || !strings.HasSuffix(literal, `"""`) {
		return "", fmt.Errorf("not a triple-quoted literal: %q", literal)
	}
	body := literal[3 : len(literal)-3]
	body = strings.ReplaceAll(body, `\"\"\"`, `"""`)
	// Undo the trailing-quote escape only when the final quote is actually
	// escaped; a bare trailing quote here came from a triple-quote run.
	if strings.HasSuffix(body, `\"`) && !hasUnescapedTrailingQuote(body) {
		body = body[:len(body)-2] + `"`
	}
	body = strings.ReplaceAll(body, `\\`, `\`)
	return body, nil
}

// IsNumeric reports whether value parses as a finite number, i.e. whether it
// can be emitted verbatim as a Python numeric literal.
func IsNumeric(value string) bool {
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}
