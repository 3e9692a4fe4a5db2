package blocks

import (
	"regexp"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

const (
	// DefaultAnnotation matches the comment the inline fix writes above a
	// constants block. It is anchored to the end of the lookback window.
	DefaultAnnotation = `{#\s*Issue #327 Fix[^#]*#}\s*$`
	// DefaultLookback is how many bytes before a block are searched.
	DefaultLookback = 200
)

// Annotator extends blocks backwards over an immediately preceding comment.
type Annotator struct {
	pattern  *regexp.Regexp
	lookback int
}

// NewAnnotator creates an annotator. pattern must only match a comment that
// ends the searched window, allowing trailing whitespace.
func NewAnnotator(pattern *regexp.Regexp, lookback int) *Annotator {
	if lookback < 0 {
		lookback = 0
	}
	return &Annotator{pattern: pattern, lookback: lookback}
}

// DefaultAnnotator recognizes the Issue #327 comment within 200 bytes.
func DefaultAnnotator() *Annotator {
	return NewAnnotator(regexp.MustCompile(DefaultAnnotation), DefaultLookback)
}

// Attach returns b with Start moved to the beginning of the annotation
// comment right before it. b is returned unchanged when there is none or a
// is nil.
func (a *Annotator) Attach(text string, b types.Block) types.Block {
	if a != nil {
		b = a.attach(text, b, 0)
	}
	b.Text = text[b.Start:b.End]
	return b
}

// attach never moves Start below floor, the end of the previous block.
func (a *Annotator) attach(text string, b types.Block, floor int) types.Block {
	windowStart := b.Start - a.lookback
	if windowStart < floor {
		windowStart = floor
	}
	if windowStart < 0 {
		windowStart = 0
	}
	if windowStart >= b.Start {
		return b
	}

	loc := a.pattern.FindStringIndex(text[windowStart:b.Start])
	if loc == nil {
		return b
	}
	b.Start = windowStart + loc[0]
	b.Annotated = true
	return b
}
