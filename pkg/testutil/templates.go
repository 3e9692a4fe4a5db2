package testutil

import (
	"path/filepath"
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/stretchr/testify/require"
)

// TemplateDir is a template directory living on a test filesystem.
type TemplateDir struct {
	FS  types.FS
	Dir string
}

// SetupTemplateDir creates dir on fsys and writes every file in files into it.
func SetupTemplateDir(t *testing.T, fsys types.FS, dir string, files map[string]string) *TemplateDir {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(dir, 0755))
	td := &TemplateDir{FS: fsys, Dir: dir}
	for name, content := range files {
		td.AddTemplate(t, name, content)
	}
	return td
}

// AddTemplate writes a template and returns its full path.
func (td *TemplateDir) AddTemplate(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(td.Dir, name)
	require.NoError(t, td.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// Read returns the current content of a template.
func (td *TemplateDir) Read(t *testing.T, name string) string {
	t.Helper()

	data, err := td.FS.ReadFile(filepath.Join(td.Dir, name))
	require.NoError(t, err)
	return string(data)
}

// Path returns the full path of a template in the directory.
func (td *TemplateDir) Path(name string) string {
	return filepath.Join(td.Dir, name)
}
