package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"hello"`, QuoteString("hello"))
	assert.Equal(t, `""`, QuoteString(""))
	assert.Equal(t, `"say \"hi\""`, QuoteString(`say "hi"`))
	assert.Equal(t, `"a\\b"`, QuoteString(`a\b`))
	assert.Equal(t, `"line1\nline2"`, QuoteString("line1\nline2"))
	assert.Equal(t, `"tab\there"`, QuoteString("tab\there"))
}

func TestQuoteStringRoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{
		"",
		"plain",
		`with "quotes"`,
		`back\slash`,
		"multi\nline\r\n",
		"mixed \"q\" and \\ and \t tab",
		"unicode: héllo 世界",
	}
	for _, v := range values {
		got, err := UnquoteString(QuoteString(v))
		require.NoError(t, err, "value %q", v)
		assert.Equal(t, v, got)
	}
}

func TestUnquoteStringRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, lit := range []string{``, `"`, `no quotes`, `"dangling\"`, `"inner"quote"`} {
		_, err := UnquoteString(lit)
		assert.Error(t, err, "literal %q", lit)
	}
}

func TestTripleQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"""body text"""`, TripleQuote("body text"))
	assert.Equal(t, `""""""`, TripleQuote(""))
	assert.Equal(t, "\"\"\"line1\nline2\"\"\"", TripleQuote("line1\nline2"))
	assert.Equal(t, `"""a\\b"""`, TripleQuote(`a\b`))
	assert.Equal(t, `"""say \"\"\" now"""`, TripleQuote(`say """ now`))
	// A trailing quote must not merge with the closing delimiter.
	assert.Equal(t, `"""ends with \""""`, TripleQuote(`ends with "`))
	// A trailing quote run is already escaped; escaping it again would leave
	// a bare quote against the closing delimiter.
	assert.Equal(t, `"""abc\"\"\""""`, TripleQuote(`abc"""`))
	assert.Equal(t, `"""ab\\\""""`, TripleQuote(`ab\"`))
}

func TestTripleQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{
		"",
		"plain",
		"multi\nline\nbody",
		`embedded """ run`,
		`trailing quote "`,
		`ends in a run """`,
		`""""`,
		`ab\"`,
		`back\slash`,
		`trailing back\slash\`,
	}
	for _, v := range values {
		got, err := UnTripleQuote(TripleQuote(v))
		require.NoError(t, err, "value %q", v)
		assert.Equal(t, v, got)
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0", "5", "-2.5", "3.14159", "1e6", ".5"} {
		assert.True(t, IsNumeric(v), "value %q", v)
	}
	for _, v := range []string{"", "abc", "1/2", "NaN", "Inf", "-Inf", "five", "1,000"} {
		assert.False(t, IsNumeric(v), "value %q", v)
	}
}
