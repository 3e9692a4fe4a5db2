package topics

// Renderer turns a topic's source into what the help command prints. ext is
// the topic file's extension, such as ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as written.
type PlainRenderer struct{}

// Render returns content unchanged.
func (PlainRenderer) Render(content string, ext string) string {
	return content
}
