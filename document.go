package lecturekit

import (
	"fmt"
	"strconv"
	"strings"
)

// Document represents an HTML page read from disk.
type Document struct {
	Path    string
	Content string
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// Lines returns the document content split into lines.
func (d *Document) Lines() Lines {
	return SplitLines(d.Content)
}

// Lines is an ordered sequence of lines. Each element keeps its line
// terminator, so joining the lines reproduces the original text.
type Lines []string

// SplitLines splits s after every "\n". A final line without a terminator
// is kept as is; an empty string yields no lines.
func SplitLines(s string) Lines {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Join concatenates the lines back into a single string.
func (l Lines) Join() string {
	return strings.Join(l, "")
}

// Slice returns the lines in r. Out-of-range bounds are clamped instead of
// panicking: an end past the last line is truncated and a start at or past
// the end yields no lines.
func (l Lines) Slice(r LineRange) Lines {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(l) {
		end = len(l)
	}
	if start >= end {
		return nil
	}
	return l[start:end]
}

// LineRange is a half-open, 0-indexed range of lines [Start, End).
type LineRange struct {
	Start int
	End   int
}

// Len returns the number of lines the range covers, ignoring any document.
func (r LineRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Validate returns an error if the range is negative or inverted.
func (r LineRange) Validate() error {
	if r.Start < 0 || r.End < 0 {
		return Errorf(EINVALID, "line range %s has a negative bound", r)
	}
	if r.End < r.Start {
		return Errorf(EINVALID, "line range %s ends before it starts", r)
	}
	return nil
}

// String formats the range as "start:end".
func (r LineRange) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// ParseLineRange parses a "start:end" range.
func ParseLineRange(s string) (LineRange, error) {
	before, after, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return LineRange{}, Errorf(EINVALID, "line range %q must look like start:end", s)
	}
	start, err := strconv.Atoi(before)
	if err != nil {
		return LineRange{}, Errorf(EINVALID, "line range %q has an invalid start", s)
	}
	end, err := strconv.Atoi(after)
	if err != nil {
		return LineRange{}, Errorf(EINVALID, "line range %q has an invalid end", s)
	}
	r := LineRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return LineRange{}, err
	}
	return r, nil
}
