// Package prompt implements the interactive numeric input loop: each
// parameter is asked for repeatedly until the operator supplies a
// positive number inside the parameter's allowed range.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Param describes one numeric input: the text shown to the operator and
// the inclusive range of acceptable values.
type Param struct {
	Prompt string
	Min    float64
	Max    float64
}

// Reader collects validated numeric input from an operator.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader that prompts on out and reads responses from in.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Float prompts for a positive number inside the parameter's range,
// re-prompting with a specific message on malformed or out-of-range
// input. It returns an error only when the input stream ends or fails.
func (r *Reader) Float(p Param) (float64, error) {
	for {
		fmt.Fprint(r.out, p.Prompt)

		line, err := r.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, fmt.Errorf("prompt: reading input: %w", err)
		}

		value, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		switch {
		case perr != nil:
			fmt.Fprintln(r.out, "Invalid input. Please enter a number.")
		case value <= 0:
			fmt.Fprintln(r.out, "Please enter a positive number.")
		case value < p.Min:
			fmt.Fprintf(r.out, "Please enter a value >= %g\n", p.Min)
		case value > p.Max:
			fmt.Fprintf(r.out, "Please enter a value <= %g\n", p.Max)
		default:
			return value, nil
		}

		// A final unterminated line has been consumed; nothing further
		// can arrive.
		if err == io.EOF {
			return 0, fmt.Errorf("prompt: reading input: %w", io.ErrUnexpectedEOF)
		}
	}
}
