// Package display turns command results into report lines.
//
// Lines carry a semantic style name and an indent level; the text renderer
// prints them as is, the terminal renderer styles them. Keeping the wording
// in one place keeps both formats in step.
package display

import (
	"fmt"
	"strings"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// Line is one line of a report.
type Line struct {
	Style  string
	Indent int
	Text   string
}

// String returns the unstyled line with its indentation.
func (l Line) String() string {
	return strings.Repeat("   ", l.Indent) + l.Text
}

const separatorWidth = 60

var titles = map[string]string{
	"scan":        "Scanning constants blocks",
	"consolidate": "Consolidating inline constants blocks",
	"inline":      "Fixing request_json usage",
	"fix":         "Fixing templates",
}

// NextSteps are printed after a command that may have rewritten templates.
func NextSteps(dir string) []string {
	return []string{
		"Review changes: git diff " + dir,
		"Validate: npm run validate:inline-constants",
		"Test templates in HubSpot",
	}
}

type builder struct {
	lines []Line
}

func (b *builder) add(style string, indent int, format string, args ...interface{}) {
	b.lines = append(b.lines, Line{Style: style, Indent: indent, Text: fmt.Sprintf(format, args...)})
}

func (b *builder) separator() {
	b.add("Separator", 0, "%s", strings.Repeat("=", separatorWidth))
}

// BuildRunReport describes a whole command run.
func BuildRunReport(r *types.RunResult) []Line {
	b := &builder{}

	title, ok := titles[r.Command]
	if !ok {
		title = r.Command
	}
	b.add("Header", 0, "%s...", title)
	b.add("SubHeader", 0, "in %s", r.Dir)
	if r.DryRun {
		b.add("DryRunBanner", 0, "Dry run: no files will be written")
	}
	b.separator()

	for _, doc := range r.Documents {
		b.document(r.Command, doc)
	}

	b.add("", 0, "")
	b.separator()
	b.summary(r)

	if r.Command != "scan" {
		b.add("", 0, "")
		b.add("Bold", 0, "Next steps:")
		for i, step := range NextSteps(r.Dir) {
			b.add("NextStep", 1, "%d. %s", i+1, step)
		}
	}
	return b.lines
}

func (b *builder) document(command string, doc types.DocumentResult) {
	switch doc.Status {
	case types.StatusNotFound:
		b.add("Warning", 0, "Not found: %s", doc.Name)
		return
	case types.StatusExcluded:
		b.add("Muted", 0, "Skipping: %s (already fixed)", doc.Name)
		return
	}

	b.add("Document", 0, "Processing: %s", doc.Name)

	for _, w := range doc.Warnings {
		b.add("Warning", 1, "Warning: %s (%s at position %d)", w.Message, w.Code, w.Offset)
	}

	if command == "inline" || command == "fix" {
		b.substitutions(doc)
	}
	if command != "inline" {
		b.blocks(command, doc)
	}

	if doc.Changed() {
		if doc.Written {
			b.add("Success", 1, "Saved changes to %s", doc.Name)
		} else {
			b.add("Info", 1, "Would save changes to %s", doc.Name)
		}
	}
}

func (b *builder) substitutions(doc types.DocumentResult) {
	if doc.Matches == 0 {
		if doc.Status == types.StatusUnchanged {
			b.add("Muted", 1, "No request_json usage found")
		}
		return
	}
	b.add("", 1, "Found %d instance(s) of request_json", doc.Matches)
	for _, r := range doc.Replaced {
		b.add("Success", 1, "Replaced %s at position %d", r.Name, r.Offset)
	}
	for _, s := range doc.Skipped {
		b.add("Warning", 1, "Skipped %s: %s at position %d", s.Reason, s.Name, s.Offset)
	}
}

func (b *builder) blocks(command string, doc types.DocumentResult) {
	n := len(doc.Blocks)
	if n <= 1 && command != "scan" {
		b.add("Success", 1, "Already consolidated (%d block)", n)
		return
	}

	b.add("", 1, "Found %d constants block(s)", n)
	for i, blk := range doc.Blocks {
		note := ""
		if blk.Annotated {
			note = " (annotated)"
		}
		b.add("Position", 2, "Block %d: position %d-%d%s", i+1, blk.Start, blk.End, note)
	}

	for _, removed := range doc.Removed {
		b.add("Success", 1, "Removed duplicate block %d at position %d", blockNumber(doc.Blocks, removed), removed.Start)
	}
	if len(doc.Removed) > 0 {
		b.add("Success", 1, "Consolidated to 1 constants block")
	}
}

// blockNumber returns the 1-based position of blk among blocks.
func blockNumber(blocks []types.Block, blk types.Block) int {
	for i, candidate := range blocks {
		if candidate.Start == blk.Start && candidate.End == blk.End {
			return i + 1
		}
	}
	return 0
}

func (b *builder) summary(r *types.RunResult) {
	processed := 0
	duplicated := 0
	for _, doc := range r.Documents {
		if doc.Status == types.StatusChanged || doc.Status == types.StatusUnchanged {
			processed++
		}
		if len(doc.Blocks) > 1 {
			duplicated++
		}
	}

	changed := r.ChangedCount()
	verb := map[string]string{
		"consolidate": "Consolidated",
		"inline":      "Fixed",
		"fix":         "Fixed",
	}[r.Command]

	switch {
	case r.Command == "scan":
		b.add("Success", 0, "Scanned %d template(s), %d with duplicate blocks", processed, duplicated)
	case r.DryRun:
		b.add("Info", 0, "Would change %d template(s)", changed)
	default:
		b.add("Success", 0, "%s %d template(s)", verb, changed)
	}

	if n := r.WarningCount(); n > 0 {
		b.add("Warning", 0, "%d warning(s), see above", n)
	}
}
