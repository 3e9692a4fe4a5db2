// pkg/ui/display/display_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify report wording for each command and document status

package display_test

import (
	"strings"
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/display"
	"github.com/stretchr/testify/assert"
)

func render(lines []display.Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestBuildRunReport_Consolidate(t *testing.T) {
	first := types.Block{Start: 10, End: 40, Annotated: true}
	second := types.Block{Start: 80, End: 120}
	result := &types.RunResult{
		Command: "consolidate",
		Dir:     "templates/learn",
		Documents: []types.DocumentResult{
			{Name: "catalog.html", Status: types.StatusChanged, Written: true,
				Blocks: []types.Block{first, second}, Removed: []types.Block{second}},
			{Name: "register.html", Status: types.StatusUnchanged, Blocks: []types.Block{first}},
			{Name: "my-learning.html", Status: types.StatusNotFound},
		},
	}

	out := render(display.BuildRunReport(result))

	assert.Contains(t, out, "Consolidating inline constants blocks...")
	assert.Contains(t, out, "Processing: catalog.html")
	assert.Contains(t, out, "Found 2 constants block(s)")
	assert.Contains(t, out, "Block 1: position 10-40 (annotated)")
	assert.Contains(t, out, "Block 2: position 80-120\n")
	assert.Contains(t, out, "Removed duplicate block 2 at position 80")
	assert.Contains(t, out, "Saved changes to catalog.html")
	assert.Contains(t, out, "Already consolidated (1 block)")
	assert.Contains(t, out, "Not found: my-learning.html")
	assert.Contains(t, out, "Consolidated 1 template(s)")
	assert.Contains(t, out, "Next steps:")
	assert.Contains(t, out, "1. Review changes: git diff templates/learn")
}

func TestBuildRunReport_Inline(t *testing.T) {
	result := &types.RunResult{
		Command: "inline",
		Dir:     "learn",
		DryRun:  true,
		Documents: []types.DocumentResult{
			{Name: "action-runner.html", Status: types.StatusExcluded},
			{Name: "page.html", Status: types.StatusChanged, Matches: 2,
				Replaced: []types.Replacement{{Name: "head_constants", Offset: 21}},
				Skipped:  []types.Skip{{Name: "other_var", Offset: 90, Reason: "non-standard variable"}}},
			{Name: "plain.html", Status: types.StatusUnchanged},
		},
	}

	out := render(display.BuildRunReport(result))

	assert.Contains(t, out, "Dry run: no files will be written")
	assert.Contains(t, out, "Skipping: action-runner.html (already fixed)")
	assert.Contains(t, out, "Found 2 instance(s) of request_json")
	assert.Contains(t, out, "Replaced head_constants at position 21")
	assert.Contains(t, out, "Skipped non-standard variable: other_var at position 90")
	assert.Contains(t, out, "Would save changes to page.html")
	assert.Contains(t, out, "No request_json usage found")
	assert.Contains(t, out, "Would change 1 template(s)")
	assert.NotContains(t, out, "constants block(s)")
}

func TestBuildRunReport_ScanWarnings(t *testing.T) {
	result := &types.RunResult{
		Command: "scan",
		Dir:     "learn",
		Documents: []types.DocumentResult{
			{Name: "broken.html", Status: types.StatusUnchanged,
				Warnings: []types.Issue{{Code: "UNBALANCED_DELIMITER", Offset: 4, Message: "unmatched braces starting at position 4"}}},
		},
	}

	lines := display.BuildRunReport(result)
	out := render(lines)

	assert.Contains(t, out, "Warning: unmatched braces starting at position 4 (UNBALANCED_DELIMITER at position 4)")
	assert.Contains(t, out, "Found 0 constants block(s)")
	assert.Contains(t, out, "Scanned 1 template(s), 0 with duplicate blocks")
	assert.Contains(t, out, "1 warning(s), see above")
	assert.NotContains(t, out, "Next steps")

	var warningStyled bool
	for _, l := range lines {
		if strings.HasPrefix(l.Text, "Warning:") {
			warningStyled = l.Style == "Warning" && l.Indent == 1
		}
	}
	assert.True(t, warningStyled)
}
