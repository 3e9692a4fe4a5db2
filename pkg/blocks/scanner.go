package blocks

import (
	"iter"
	"regexp"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// DefaultMarker introduces the inline constants definition.
	DefaultMarker = `{%\s*set\s+constants\s*=\s*\{`
	// DefaultClosing must follow the payload's closing brace.
	DefaultClosing = `^\s*%}`
)

var openingDelimiter = regexp.MustCompile(`^\s*\{`)

// MarkerFor returns a marker pattern for `{% set <name> = {`.
func MarkerFor(name string) string {
	return `{%\s*set\s+` + regexp.QuoteMeta(name) + `\s*=\s*\{`
}

// Scanner locates blocks in document text.
type Scanner struct {
	marker    *regexp.Regexp
	closing   *regexp.Regexp
	annotator *Annotator
	logger    zerolog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithClosing overrides the closing token pattern. The pattern is matched
// against the text right after the payload and should be anchored with ^.
func WithClosing(re *regexp.Regexp) Option {
	return func(s *Scanner) {
		s.closing = re
	}
}

// WithAnnotator attaches preceding annotation comments to found blocks.
func WithAnnotator(a *Annotator) Option {
	return func(s *Scanner) {
		s.annotator = a
	}
}

// WithLogger replaces the scanner's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a scanner for marker. The marker should end with the
// payload's opening brace; if it does not, the brace may follow the marker
// after optional whitespace.
func NewScanner(marker *regexp.Regexp, opts ...Option) *Scanner {
	s := &Scanner{
		marker:  marker,
		closing: regexp.MustCompile(DefaultClosing),
		logger:  logging.GetLogger("blocks.scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultScanner scans for the constants block and attaches the default
// annotation comment.
func DefaultScanner() *Scanner {
	return NewScanner(regexp.MustCompile(DefaultMarker), WithAnnotator(DefaultAnnotator()))
}

// Scan is Blocks for anonymous text.
func (s *Scanner) Scan(text string) iter.Seq2[types.Block, error] {
	return s.Blocks(types.Document{Text: text})
}

// Blocks yields the blocks of doc from left to right. A malformed candidate
// is yielded as a non-nil error with a zero Block; the caller may keep
// ranging to receive the blocks after it.
func (s *Scanner) Blocks(doc types.Document) iter.Seq2[types.Block, error] {
	return func(yield func(types.Block, error) bool) {
		text := doc.Text
		logger := s.logger
		if doc.Name != "" {
			logger = logger.With().Str("document", doc.Name).Logger()
		}

		cursor := 0
		for cursor < len(text) {
			loc := s.marker.FindStringIndex(text[cursor:])
			if loc == nil {
				return
			}
			markerStart := cursor + loc[0]
			markerEnd := cursor + loc[1]
			if markerEnd == markerStart {
				// An empty match is not a marker; step past it.
				cursor = markerStart + 1
				continue
			}

			payloadStart, ok := openPayload(text, markerEnd)
			if !ok {
				logger.Debug().Int("offset", markerStart).Msg("Marker without payload, ignoring")
				cursor = markerEnd
				continue
			}

			payloadEnd, balanced := matchBraces(text, payloadStart)
			if !balanced {
				err := s.scanError(doc, errors.ErrUnbalancedDelimiter, markerStart,
					"unmatched braces starting at position %d", markerStart)
				logger.Warn().Int("offset", markerStart).Msg("Unmatched braces, skipping block")
				if !yield(types.Block{}, err) {
					return
				}
				cursor = payloadStart
				continue
			}

			closeLoc := s.closing.FindStringIndex(text[payloadEnd:])
			if closeLoc == nil || closeLoc[0] != 0 {
				err := s.scanError(doc, errors.ErrMissingClosingToken, payloadEnd,
					"no closing token found at position %d", payloadEnd)
				logger.Warn().Int("offset", payloadEnd).Msg("No closing token after payload, skipping block")
				if !yield(types.Block{}, err) {
					return
				}
				cursor = payloadEnd
				continue
			}
			end := payloadEnd + closeLoc[1]

			block := types.Block{
				Start:       markerStart,
				End:         end,
				MarkerStart: markerStart,
			}
			if s.annotator != nil {
				block = s.annotator.attach(text, block, cursor)
			}
			block.Text = text[block.Start:block.End]

			logger.Trace().
				Int("start", block.Start).
				Int("end", block.End).
				Bool("annotated", block.Annotated).
				Msg("Found block")

			if !yield(block, nil) {
				return
			}
			cursor = end
		}
	}
}

func (s *Scanner) scanError(doc types.Document, code errors.ErrorCode, offset int, format string, args ...interface{}) error {
	err := errors.Newf(code, format, args...).WithDetail("offset", offset)
	if doc.Name != "" {
		err.WithDetail("document", doc.Name)
	}
	return err
}

// openPayload returns the offset just past the payload's opening brace.
func openPayload(text string, markerEnd int) (int, bool) {
	if markerEnd > 0 && text[markerEnd-1] == '{' {
		return markerEnd, true
	}
	loc := openingDelimiter.FindStringIndex(text[markerEnd:])
	if loc == nil {
		return 0, false
	}
	return markerEnd + loc[1], true
}

// matchBraces scans from start, just inside an opening brace, and returns the
// offset just past the brace that brings the depth back to zero.
func matchBraces(text string, start int) (int, bool) {
	depth := 1
	for pos := start; pos < len(text); pos++ {
		switch text[pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return pos + 1, true
			}
		}
	}
	return len(text), false
}
