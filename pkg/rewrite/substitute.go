package rewrite

import (
	"regexp"
	"strings"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultLegacyPattern matches the request_json statement that loaded the
// constants file at render time.
const DefaultLegacyPattern = `(?i){%\s*set\s+(\w+)\s*=\s*get_asset_url\(["'].*?constants\.json["']\)\s*\|\s*request_json\s*%}`

// DefaultAllowedNames are the variables that may be rewritten.
var DefaultAllowedNames = []string{"constants", "head_constants"}

// SkipReasonName is reported for matches whose variable is not allowed.
const SkipReasonName = "non-standard variable"

// Substituter replaces legacy statements with the canonical block text.
type Substituter struct {
	pattern   *regexp.Regexp
	nameGroup int
	canonical string
	allowed   map[string]bool
	logger    zerolog.Logger
}

// SubstituteResult is the outcome of Substitute.
type SubstituteResult struct {
	Text     string
	Matches  int
	Replaced []types.Replacement
	Skipped  []types.Skip
}

// Changed reports whether any statement was replaced.
func (r SubstituteResult) Changed() bool {
	return len(r.Replaced) > 0
}

// NewSubstituter creates a substituter. The variable name is taken from the
// capture group called "name" or, if there is none, from group 1. Names are
// compared case-insensitively.
func NewSubstituter(pattern *regexp.Regexp, canonical string, allowed []string) (*Substituter, error) {
	group := pattern.SubexpIndex("name")
	if group < 0 {
		if pattern.NumSubexp() < 1 {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"pattern %q has no capture group for the variable name", pattern.String())
		}
		group = 1
	}

	allowSet := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		allowSet[strings.ToLower(name)] = true
	}

	return &Substituter{
		pattern:   pattern,
		nameGroup: group,
		canonical: strings.TrimRight(canonical, "\r\n"),
		allowed:   allowSet,
		logger:    logging.GetLogger("rewrite.substitute"),
	}, nil
}

// Substitute rewrites every allowed match in text. Skipped matches are left
// untouched and reported.
func (s *Substituter) Substitute(text string) SubstituteResult {
	return s.substitute(text, s.logger)
}

// SubstituteDocument is Substitute with log records tagged by document name.
func (s *Substituter) SubstituteDocument(doc types.Document) SubstituteResult {
	return s.substitute(doc.Text, s.logger.With().Str("document", doc.Name).Logger())
}

func (s *Substituter) substitute(text string, logger zerolog.Logger) SubstituteResult {

	matches := s.pattern.FindAllStringSubmatchIndex(text, -1)
	res := SubstituteResult{Text: text, Matches: len(matches)}
	if len(matches) == 0 {
		return res
	}

	edits := make([]Edit, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		name := ""
		if gs, ge := m[2*s.nameGroup], m[2*s.nameGroup+1]; gs >= 0 {
			name = text[gs:ge]
		}

		if !s.allowed[strings.ToLower(name)] {
			logger.Warn().Str("name", name).Int("offset", start).Msg("Skipped non-standard variable")
			res.Skipped = append(res.Skipped, types.Skip{Name: name, Offset: start, Reason: SkipReasonName})
			continue
		}

		edits = append(edits, Edit{
			Start: start,
			End:   end,
			Text:  Reindent(s.canonical, LineIndent(text, start)),
		})
		res.Replaced = append(res.Replaced, types.Replacement{Name: name, Offset: start})
		logger.Debug().Str("name", name).Int("offset", start).Msg("Replacing legacy statement")
	}

	// Regex matches never overlap, so Apply cannot fail here.
	out, err := Apply(text, edits)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to apply replacements")
		res.Replaced = nil
		return res
	}
	res.Text = out
	return res
}
