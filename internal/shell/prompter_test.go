package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRepromptsOnJunk(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("abc\n\n12\n"), &out)

	n, ok := p.Int("user id")
	require.True(t, ok)
	assert.Equal(t, 12, n)
	assert.Contains(t, out.String(), "Enter user id:")
	assert.Contains(t, out.String(), "Invalid user id. Must be a number:")
}

func TestIntStopsAtEOF(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader(""), &out)

	_, ok := p.Int("book id")
	assert.False(t, ok)
}

func TestIntInRangeRepromptsUntilInBounds(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("9\n0\n3\n"), &out)

	n, ok := p.IntInRange("your choice (1-7)", 1, 7)
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Contains(t, out.String(), "Please enter between 1 and 7.")
}

func TestNonEmptyStringTrimsAndReprompts(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("\n   \n  Dune \n"), &out)

	s, ok := p.NonEmptyString("book title")
	require.True(t, ok)
	assert.Equal(t, "Dune", s)
	assert.Contains(t, out.String(), "book title cannot be empty.")
}

func TestNonEmptyStringStopsAtEOF(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("\n"), &out)

	_, ok := p.NonEmptyString("author name")
	assert.False(t, ok)
}
