// pkg/rewrite/edit_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify descending-order edit application and validation

package rewrite_test

import (
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		edits []rewrite.Edit
		want  string
	}{
		{
			name: "no edits",
			text: "abcdef",
			want: "abcdef",
		},
		{
			name: "ascending input is applied from the end",
			text: "abcdef",
			edits: []rewrite.Edit{
				{Start: 0, End: 1, Text: "XYZ"},
				{Start: 4, End: 6},
			},
			want: "XYZbcd",
		},
		{
			name: "insertion",
			text: "ac",
			edits: []rewrite.Edit{
				{Start: 1, End: 1, Text: "b"},
			},
			want: "abc",
		},
		{
			name: "adjacent edits",
			text: "aabb",
			edits: []rewrite.Edit{
				{Start: 2, End: 4, Text: "2"},
				{Start: 0, End: 2, Text: "1"},
			},
			want: "12",
		},
		{
			name: "collapse newlines after deletion",
			text: "a[B]\n\n\nc",
			edits: []rewrite.Edit{
				{Start: 1, End: 4, CollapseNewlines: true},
			},
			want: "a\nc",
		},
		{
			name: "collapse leaves other text alone",
			text: "a[B] c",
			edits: []rewrite.Edit{
				{Start: 1, End: 4, CollapseNewlines: true},
			},
			want: "a c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rewrite.Apply(tt.text, tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		edits []rewrite.Edit
	}{
		{"overlap", []rewrite.Edit{{Start: 0, End: 3}, {Start: 2, End: 4}}},
		{"past end", []rewrite.Edit{{Start: 5, End: 10}}},
		{"negative start", []rewrite.Edit{{Start: -1, End: 1}}},
		{"inverted", []rewrite.Edit{{Start: 3, End: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rewrite.Apply("abcdef", tt.edits)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestApply_DoesNotReorderCallerSlice(t *testing.T) {
	edits := []rewrite.Edit{{Start: 0, End: 1}, {Start: 2, End: 3}}
	_, err := rewrite.Apply("abc", edits)
	require.NoError(t, err)
	assert.Equal(t, 0, edits[0].Start)
	assert.Equal(t, 2, edits[1].Start)
}
