// pkg/types/types_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify the small helpers on the data model

package types_test

import (
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	a := types.Block{Start: 0, End: 10}
	b := types.Block{Start: 10, End: 20}
	c := types.Block{Start: 5, End: 15}

	assert.Equal(t, 10, a.Len())
	assert.Equal(t, "0-10", a.String())
	assert.False(t, a.Overlaps(b), "adjacent blocks do not overlap")
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(b))
}

func TestDocument_WithText(t *testing.T) {
	doc := types.Document{Name: "a.html", Path: "/t/a.html", Text: "old"}
	next := doc.WithText("newer")

	assert.Equal(t, "old", doc.Text, "the original is not modified")
	assert.Equal(t, "newer", next.Text)
	assert.Equal(t, doc.Name, next.Name)
	assert.Equal(t, 5, next.Len())
}

func TestRunResult_Counts(t *testing.T) {
	r := types.RunResult{Documents: []types.DocumentResult{
		{Status: types.StatusChanged, Warnings: []types.Issue{{Code: "X"}}},
		{Status: types.StatusUnchanged},
		{Status: types.StatusNotFound},
		{Status: types.StatusChanged, Warnings: []types.Issue{{Code: "Y"}, {Code: "Z"}}},
	}}

	assert.Equal(t, 2, r.ChangedCount())
	assert.Equal(t, 3, r.WarningCount())
	assert.True(t, r.Documents[0].Changed())
	assert.False(t, r.Documents[2].Changed())
}
