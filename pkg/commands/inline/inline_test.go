// pkg/commands/inline/inline_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test request_json substitution across globbed templates

package inline_test

import (
	"strings"
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/commands/inline"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/testutil"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dir    = "/site/learn"
	legacy = "{% set constants = get_asset_url('../config/constants.json') | request_json %}"
)

func newConfig() *config.Config {
	cfg := config.Default()
	cfg.Templates.Dir = dir
	return cfg
}

func TestInline_Glob(t *testing.T) {
	fsys := testutil.NewCountingFS(testutil.NewTestFS())
	td := testutil.SetupTemplateDir(t, fsys, dir, map[string]string{
		"action-runner.html": legacy + "\n",
		"page.html":          testutil.RequestJSONTemplate,
		"plain.html":         "<p>nothing</p>\n",
		"notes.txt":          legacy,
	})
	setupWrites := len(fsys.Writes())

	result, err := inline.Inline(inline.InlineOptions{FS: fsys, Config: newConfig()})
	require.NoError(t, err)
	require.Len(t, result.Documents, 3)

	runner := result.Documents[0]
	assert.Equal(t, "action-runner.html", runner.Name)
	assert.Equal(t, types.StatusExcluded, runner.Status)
	assert.Equal(t, legacy+"\n", td.Read(t, "action-runner.html"))

	page := result.Documents[1]
	assert.Equal(t, types.StatusChanged, page.Status)
	assert.Equal(t, 2, page.Matches)
	require.Len(t, page.Replaced, 1)
	assert.Equal(t, "head_constants", page.Replaced[0].Name)
	require.Len(t, page.Skipped, 1)
	assert.Equal(t, "other_var", page.Skipped[0].Name)

	out := td.Read(t, "page.html")
	assert.NotContains(t, out, "head_constants")
	assert.Contains(t, out, "other_var = get_asset_url")
	assert.Contains(t, out, "{% block head %}\n    {#\n      Issue #327 Fix")
	assert.Contains(t, out, "\n    {% set constants = {\n")

	plain := result.Documents[2]
	assert.Equal(t, types.StatusUnchanged, plain.Status)
	assert.Equal(t, 0, plain.Matches)

	assert.Equal(t, []string{td.Path("page.html")}, fsys.Writes()[setupWrites:])
}

func TestInline_Idempotent(t *testing.T) {
	fsys := testutil.NewTestFS()
	td := testutil.SetupTemplateDir(t, fsys, dir, map[string]string{
		"page.html": "<head>\n  " + legacy + "\n</head>\n",
	})
	opts := inline.InlineOptions{FS: fsys, Config: newConfig()}

	_, err := inline.Inline(opts)
	require.NoError(t, err)
	first := td.Read(t, "page.html")
	assert.Equal(t, 1, strings.Count(first, "{% set constants = {"))

	result, err := inline.Inline(opts)
	require.NoError(t, err)
	assert.Equal(t, types.StatusUnchanged, result.Documents[0].Status)
	assert.Equal(t, first, td.Read(t, "page.html"))
}

func TestInline_DryRun(t *testing.T) {
	fsys := testutil.NewTestFS()
	td := testutil.SetupTemplateDir(t, fsys, dir, map[string]string{"page.html": legacy})

	result, err := inline.Inline(inline.InlineOptions{FS: fsys, Config: newConfig(), DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, types.StatusChanged, result.Documents[0].Status)
	assert.False(t, result.Documents[0].Written)
	assert.Equal(t, legacy, td.Read(t, "page.html"))
}

func TestInline_CustomCanonical(t *testing.T) {
	fsys := testutil.NewTestFS()
	td := testutil.SetupTemplateDir(t, fsys, dir, map[string]string{"page.html": legacy})
	cfg := newConfig()
	cfg.Canonical = "{% set constants = {} %}"

	_, err := inline.Inline(inline.InlineOptions{FS: fsys, Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, "{% set constants = {} %}", td.Read(t, "page.html"))
}
