package types

// Document is the full text of one template at a point in time. Rewrite
// passes never modify a Document; they return a new one.
type Document struct {
	// Name is the display name, usually the file's base name.
	Name string
	// Path is where the document was loaded from. Empty for in-memory documents.
	Path string
	Text string
}

// WithText returns a copy of the document carrying new text.
func (d Document) WithText(text string) Document {
	d.Text = text
	return d
}

// Len returns the document length in bytes.
func (d Document) Len() int {
	return len(d.Text)
}
