package hublfix

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

// TopicsFS returns the embedded help topics.
func TopicsFS() fs.FS {
	return topicFiles
}
