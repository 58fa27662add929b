package prompt

import (
	"strings"
	"testing"
)

func TestFloat(t *testing.T) {
	param := Param{Prompt: "Enter building length (feet): ", Min: 10, Max: 100}

	tests := []struct {
		name     string
		input    string
		expected float64
		messages []string
	}{
		{
			name:     "first value accepted",
			input:    "40\n",
			expected: 40,
		},
		{
			name:     "non-numeric then valid",
			input:    "forty\n40\n",
			expected: 40,
			messages: []string{"Invalid input. Please enter a number."},
		},
		{
			name:     "negative then valid",
			input:    "-5\n40\n",
			expected: 40,
			messages: []string{"Please enter a positive number."},
		},
		{
			name:     "zero then valid",
			input:    "0\n40\n",
			expected: 40,
			messages: []string{"Please enter a positive number."},
		},
		{
			name:     "below range then valid",
			input:    "9\n10\n",
			expected: 10,
			messages: []string{"Please enter a value >= 10"},
		},
		{
			name:     "above range then valid",
			input:    "250\n100\n",
			expected: 100,
			messages: []string{"Please enter a value <= 100"},
		},
		{
			name:     "several bad answers before a good one",
			input:    "abc\n-1\n5\n101\n42.5\n",
			expected: 42.5,
			messages: []string{
				"Invalid input. Please enter a number.",
				"Please enter a positive number.",
				"Please enter a value >= 10",
				"Please enter a value <= 100",
			},
		},
		{
			name:     "accepts a final line without newline",
			input:    "40",
			expected: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			r := New(strings.NewReader(tt.input), &out)

			got, err := r.Float(param)
			if err != nil {
				t.Fatalf("Float returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Float = %g, expected %g", got, tt.expected)
			}
			for _, msg := range tt.messages {
				if !strings.Contains(out.String(), msg) {
					t.Errorf("output missing %q\noutput:\n%s", msg, out.String())
				}
			}
		})
	}
}

func TestFloatEOF(t *testing.T) {
	var out strings.Builder

	// Stream ends before any valid answer.
	r := New(strings.NewReader(""), &out)
	if _, err := r.Float(Param{Prompt: "? ", Min: 1, Max: 10}); err == nil {
		t.Error("expected error on empty input stream, got nil")
	}

	// Stream ends after only invalid answers.
	r = New(strings.NewReader("nope\n0\n"), &out)
	if _, err := r.Float(Param{Prompt: "? ", Min: 1, Max: 10}); err == nil {
		t.Error("expected error when stream ends without a valid value, got nil")
	}
}
