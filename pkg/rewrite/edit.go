package rewrite

import (
	"sort"
	"strings"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
)

// Edit replaces text[Start:End] with Text. An empty Text deletes the span.
type Edit struct {
	Start int
	End   int
	Text  string
	// CollapseNewlines squeezes a run of newlines right after the edited
	// span down to one, so deleting a block leaves no blank-line gap.
	CollapseNewlines bool
}

// Apply applies edits to text in descending Start order. Edits must lie
// within text and must not overlap.
func Apply(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	for i, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(text) {
			return "", errors.Newf(errors.ErrInvalidInput,
				"edit %d-%d is outside the document (length %d)", e.Start, e.End, len(text)).
				WithDetail("offset", e.Start)
		}
		if i > 0 && e.End > sorted[i-1].Start {
			return "", errors.Newf(errors.ErrInvalidInput,
				"edit %d-%d overlaps edit %d-%d", e.Start, e.End, sorted[i-1].Start, sorted[i-1].End).
				WithDetail("offset", e.Start)
		}
	}

	for _, e := range sorted {
		after := text[e.End:]
		if e.CollapseNewlines {
			after = collapseLeadingNewlines(after)
		}
		text = text[:e.Start] + e.Text + after
	}
	return text, nil
}

func collapseLeadingNewlines(s string) string {
	trimmed := strings.TrimLeft(s, "\n")
	if len(trimmed) == len(s) {
		return s
	}
	return "\n" + trimmed
}
