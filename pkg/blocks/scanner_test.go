// pkg/blocks/scanner_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify brace-balanced block scanning, recovery and ordering

package blocks_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hedgehog-cloud/hublfix/pkg/blocks"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, s *blocks.Scanner, text string) ([]types.Block, []error) {
	t.Helper()
	var found []types.Block
	var errs []error
	for b, err := range s.Scan(text) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		found = append(found, b)
	}
	return found, errs
}

// nestedPayload builds "{'k0': {'k1': {... 'v' ...}}}" with n nested pairs
// inside the outer payload braces.
func nestedPayload(n int) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "'k%d': {", i)
	}
	sb.WriteString("'v': 1")
	for i := 0; i < n; i++ {
		sb.WriteString("}")
	}
	sb.WriteString("}")
	return sb.String()
}

func TestScan_BalancedNesting(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("nested_%d", n), func(t *testing.T) {
			statement := "{% set constants = " + nestedPayload(n) + " %}"
			text := "<head>\n" + statement + "\n<body>}</body>"

			found, errs := scanAll(t, blocks.DefaultScanner(), text)

			require.Empty(t, errs)
			require.Len(t, found, 1)
			start := strings.Index(text, "{% set")
			assert.Equal(t, start, found[0].Start)
			assert.Equal(t, start+len(statement), found[0].End)
			assert.Equal(t, statement, found[0].Text)
			assert.False(t, found[0].Annotated)
		})
	}
}

func TestScan_NonOverlappingInOrder(t *testing.T) {
	const k = 4
	var parts []string
	for i := 0; i < k; i++ {
		parts = append(parts, fmt.Sprintf("{%% set constants = {'A': %d, 'B': {'C': %d}} %%}", i, i))
	}
	// Two markers share a line to check they are handled one after another.
	text := parts[0] + " " + parts[1] + "\n<p>x</p>\n" + parts[2] + "\n\n" + parts[3] + "\n"

	found, errs := scanAll(t, blocks.DefaultScanner(), text)

	require.Empty(t, errs)
	require.Len(t, found, k)
	for i, b := range found {
		assert.Equal(t, parts[i], b.Text)
		assert.Equal(t, text[b.Start:b.End], b.Text)
		if i > 0 {
			assert.Greater(t, b.Start, found[i-1].Start)
			assert.GreaterOrEqual(t, b.Start, found[i-1].End, "blocks must not overlap")
		}
	}
}

func TestScan_ScenarioTwoAssignments(t *testing.T) {
	text := "{% set constants = {'A': 1} %}\n...\n{% set constants = {'A': 1, 'B': {'C': 2}} %}"

	found, errs := scanAll(t, blocks.DefaultScanner(), text)

	require.Empty(t, errs)
	require.Len(t, found, 2)
	assert.Equal(t, "{% set constants = {'A': 1} %}", found[0].Text)
	assert.Equal(t, "{% set constants = {'A': 1, 'B': {'C': 2}} %}", found[1].Text)
	assert.Equal(t, len(text), found[1].End)
}

func TestScan_NestedMarkerIsNotABoundary(t *testing.T) {
	text := "{% set constants = {'inner': {% set constants = {}} } %}\n"

	found, errs := scanAll(t, blocks.DefaultScanner(), text)

	require.Empty(t, errs)
	require.Len(t, found, 1)
	assert.Equal(t, strings.TrimSuffix(text, "\n"), found[0].Text)
}

func TestScan_UnbalancedRecovers(t *testing.T) {
	// The extra brace before %} keeps the depth above zero to the end.
	bad := "{% set constants = {'a': {'b': 1 %}\n"
	good := "{% set constants = {'b': 2} %}"
	text := bad + good

	found, errs := scanAll(t, blocks.DefaultScanner(), text)

	require.Len(t, errs, 1)
	assert.True(t, errors.IsErrorCode(errs[0], errors.ErrUnbalancedDelimiter))
	assert.Equal(t, 0, errors.Offset(errs[0]))

	require.Len(t, found, 1)
	assert.Equal(t, good, found[0].Text)
	assert.Equal(t, len(bad), found[0].Start)
}

func TestScan_MissingClosingTokenRecovers(t *testing.T) {
	bad := "{% set constants = {'a': 1} }\n"
	good := "{% set constants = {'b': 2} %}"
	text := bad + good

	found, errs := scanAll(t, blocks.DefaultScanner(), text)

	require.Len(t, errs, 1)
	assert.True(t, errors.IsErrorCode(errs[0], errors.ErrMissingClosingToken))
	assert.Equal(t, strings.Index(bad, "} }")+1, errors.Offset(errs[0]))

	require.Len(t, found, 1)
	assert.Equal(t, good, found[0].Text)
}

func TestScan_ErrorsCarryDocumentName(t *testing.T) {
	s := blocks.DefaultScanner()
	doc := types.Document{Name: "catalog.html", Text: "{% set constants = {"}

	var errs []error
	for _, err := range s.Blocks(doc) {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	details := errors.GetErrorDetails(errs[0])
	assert.Equal(t, "catalog.html", details["document"])
	assert.Equal(t, 0, details["offset"])
}

func TestScan_StopsWhenConsumerBreaks(t *testing.T) {
	text := strings.Repeat("{% set constants = {'a': 1} %}\n", 3)

	count := 0
	for _, err := range blocks.DefaultScanner().Scan(text) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestScan_NoMarker(t *testing.T) {
	found, errs := scanAll(t, blocks.DefaultScanner(), "{% set other = {'a': 1} %}")
	assert.Empty(t, found)
	assert.Empty(t, errs)

	found, errs = scanAll(t, blocks.DefaultScanner(), "")
	assert.Empty(t, found)
	assert.Empty(t, errs)
}

func TestScan_CaseOfOtherMarkers(t *testing.T) {
	text := "{% set head_constants = {'a': {'b': 1}} %}\n{% set constants = {'c': 2} %}"

	s := blocks.NewScanner(regexp.MustCompile(blocks.MarkerFor("head_constants")))
	found, errs := scanAll(t, s, text)

	require.Empty(t, errs)
	require.Len(t, found, 1)
	assert.Equal(t, "{% set head_constants = {'a': {'b': 1}} %}", found[0].Text)
}

func TestScan_MarkerWithoutBrace(t *testing.T) {
	s := blocks.NewScanner(regexp.MustCompile(`{%\s*set\s+constants\s*=`))
	text := "{% set constants = get_asset_url('c.json') %}\n{% set constants =   {'a': 1} %}"

	found, errs := scanAll(t, s, text)

	require.Empty(t, errs)
	require.Len(t, found, 1)
	assert.Equal(t, "{% set constants =   {'a': 1} %}", found[0].Text)
}

func TestScan_ZeroWidthMarkerTerminates(t *testing.T) {
	s := blocks.NewScanner(regexp.MustCompile(`(?:{%\s*set\s+constants\s*=\s*\{)?`))
	text := "abc {% set constants = {'a': 1} %}"

	done := make(chan struct{})
	var found []types.Block
	var errs []error
	go func() {
		defer close(done)
		found, errs = scanAll(t, s, text)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scan did not terminate")
	}
	require.Empty(t, errs)
	require.Len(t, found, 1)
	assert.Equal(t, "{% set constants = {'a': 1} %}", found[0].Text)
}

func TestScan_CustomClosing(t *testing.T) {
	s := blocks.NewScanner(regexp.MustCompile(`{%-?\s*set\s+constants\s*=\s*\{`),
		blocks.WithClosing(regexp.MustCompile(`^\s*-?%}`)))
	text := "{%- set constants = {'a': 1} -%}"

	found, errs := scanAll(t, s, text)

	require.Empty(t, errs)
	require.Len(t, found, 1)
	assert.Equal(t, text, found[0].Text)
}
