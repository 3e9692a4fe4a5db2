package config

import (
	"regexp"
	"strings"

	"github.com/hedgehog-cloud/hublfix/pkg/blocks"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/rewrite"
)

// Compiled holds the ready-to-use components built from a Config. All of
// them are read-only and safe to share.
type Compiled struct {
	Scanner     *blocks.Scanner
	Annotator   *blocks.Annotator
	Substituter *rewrite.Substituter
	Keep        int
	// Lookback is the annotation lookback in effect. It is never below the
	// configured value and may be raised to fit the canonical block.
	Lookback int
}

// Compile builds the scanner, annotator and substituter.
func (c *Config) Compile() (*Compiled, error) {
	marker, err := compilePattern("scan.marker", c.Scan.Marker)
	if err != nil {
		return nil, err
	}
	closing, err := compilePattern("scan.closing", c.Scan.Closing)
	if err != nil {
		return nil, err
	}
	annotation, err := compilePattern("annotation.pattern", c.Annotation.Pattern)
	if err != nil {
		return nil, err
	}
	legacy, err := compilePattern("inline.pattern", c.Inline.Pattern)
	if err != nil {
		return nil, err
	}

	lookback := c.Annotation.Lookback
	inlined := rewrite.Reindent(c.Canonical, strings.Repeat(" ", maxInlineIndent))
	if span := annotationSpan(marker, annotation, inlined); span > lookback {
		log.Info().Int("configured", lookback).Int("effective", span).Msg("Raising annotation lookback to fit the canonical block")
		lookback = span
	}

	annotator := blocks.NewAnnotator(annotation, lookback)
	scanner := blocks.NewScanner(marker,
		blocks.WithClosing(closing),
		blocks.WithAnnotator(annotator),
	)

	substituter, err := rewrite.NewSubstituter(legacy, c.Canonical, c.Inline.AllowedNames)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid inline.pattern").
			WithDetail("key", "inline.pattern")
	}

	return &Compiled{
		Scanner:     scanner,
		Annotator:   annotator,
		Substituter: substituter,
		Keep:        c.Consolidate.Keep,
		Lookback:    lookback,
	}, nil
}

// maxInlineIndent is the deepest indentation the canonical block is expected
// to be inlined at.
const maxInlineIndent = 16

// annotationSpan returns the distance from the start of the annotation to
// the marker in text, or 0 if text has no annotated marker. A block written
// by the inline pass must be recognized together with its comment.
func annotationSpan(marker, annotation *regexp.Regexp, text string) int {
	loc := marker.FindStringIndex(text)
	if loc == nil {
		return 0
	}
	m := annotation.FindStringIndex(text[:loc[0]])
	if m == nil {
		return 0
	}
	return loc[0] - m[0]
}

func compilePattern(key, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", key).WithDetail("key", key)
	}
	return re, nil
}
