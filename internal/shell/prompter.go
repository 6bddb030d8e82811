package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads validated values from an injected input source, so tests
// can drive it with a strings.Reader instead of os.Stdin.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps the given reader and writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Int prompts for fieldName and re-prompts until a whole number is entered.
// The second return is false once input is exhausted.
func (p *Prompter) Int(fieldName string) (int, bool) {
	fmt.Fprintf(p.out, "Enter %s: ", fieldName)
	for {
		if !p.in.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintf(p.out, "Invalid %s. Must be a number: ", fieldName)
			continue
		}
		return n, true
	}
}

// IntInRange prompts for fieldName and re-prompts until the entered number
// falls within [min, max].
func (p *Prompter) IntInRange(fieldName string, min, max int) (int, bool) {
	for {
		n, ok := p.Int(fieldName)
		if !ok {
			return 0, false
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Please enter between %d and %d.\n", min, max)
			continue
		}
		return n, true
	}
}

// NonEmptyString prompts for fieldName and re-prompts until the trimmed
// input is non-empty.
func (p *Prompter) NonEmptyString(fieldName string) (string, bool) {
	for {
		fmt.Fprintf(p.out, "Enter %s: ", fieldName)
		if !p.in.Scan() {
			return "", false
		}
		text := strings.TrimSpace(p.in.Text())
		if text == "" {
			fmt.Fprintf(p.out, "%s cannot be empty.\n", fieldName)
			continue
		}
		return text, true
	}
}
