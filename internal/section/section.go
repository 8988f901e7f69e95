// Package section splices a named section inside a larger text document.
//
// A section starts at the first occurrence of a literal start marker and runs
// up to the earliest following "next section" marker, or to the end of the
// document when none follows.
package section

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the start marker does not occur in the document.
var ErrNotFound = errors.New("section marker not found")

// Span is the byte range [Start, End) covered by a section.
type Span struct {
	Start int
	End   int
}

// NextMarker returns the smallest offset in text at which any of the
// candidates occurs. Ties go to the earlier candidate. ok is false when no
// candidate occurs.
func NextMarker(text string, candidates []string) (offset int, ok bool) {
	offset = -1
	for _, c := range candidates {
		if c == "" {
			continue
		}
		pos := strings.Index(text, c)
		if pos == -1 {
			continue
		}
		if offset == -1 || pos < offset {
			offset = pos
		}
	}
	return offset, offset != -1
}

// Locate finds the span of the section starting with marker.
func Locate(doc, marker string, next []string) (Span, error) {
	if marker == "" || doc == "" {
		return Span{}, ErrNotFound
	}

	start := strings.Index(doc, marker)
	if start == -1 {
		return Span{}, ErrNotFound
	}

	bodyStart := start + len(marker)
	end := len(doc)
	if off, ok := NextMarker(doc[bodyStart:], next); ok {
		end = bodyStart + off
	}

	return Span{Start: start, End: end}, nil
}

// Replace returns doc with the section starting at marker replaced by content.
// On ErrNotFound the original document is returned unchanged.
//
// Repeating Replace with the same content is a no-op provided content holds
// no next marker after its own leading marker and no second copy of marker.
func Replace(doc, marker string, next []string, content string) (string, error) {
	span, err := Locate(doc, marker, next)
	if err != nil {
		return doc, err
	}

	var b strings.Builder
	b.Grow(span.Start + len(content) + len(doc) - span.End)
	b.WriteString(doc[:span.Start])
	b.WriteString(content)
	b.WriteString(doc[span.End:])
	return b.String(), nil
}
