package types

import "fmt"

// Block is one discovered region of a document: a marker, its brace-balanced
// payload and its closing token, optionally preceded by an annotation comment.
//
// Text is always Document.Text[Start:End].
type Block struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	MarkerStart int    `json:"marker_start"`
	Annotated   bool   `json:"annotated"`
	Text        string `json:"-"`
}

// Len returns the number of bytes the block spans.
func (b Block) Len() int {
	return b.End - b.Start
}

// Overlaps reports whether two blocks share at least one byte.
func (b Block) Overlaps(other Block) bool {
	return b.Start < other.End && other.Start < b.End
}

// String returns the block position as "start-end".
func (b Block) String() string {
	return fmt.Sprintf("%d-%d", b.Start, b.End)
}
