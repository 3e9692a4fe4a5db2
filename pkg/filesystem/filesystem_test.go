// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, temp dir
// PURPOSE: Verify both FS implementations behave the same for the pipeline's needs

package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/filesystem"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystems(t *testing.T) {
	impls := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return filesystem.NewOS(), t.TempDir()
		},
		"afero": func(t *testing.T) (types.FS, string) {
			return filesystem.NewAferoFS(afero.NewMemMapFs()), "/work"
		},
	}

	for name, newFS := range impls {
		t.Run(name, func(t *testing.T) {
			fsys, root := newFS(t)
			dir := filepath.Join(root, "learn")

			require.NoError(t, fsys.MkdirAll(dir, 0755))
			require.NoError(t, fsys.WriteFile(filepath.Join(dir, "b.html"), []byte("b"), 0644))
			require.NoError(t, fsys.WriteFile(filepath.Join(dir, "a.html"), []byte("a"), 0644))

			data, err := fsys.ReadFile(filepath.Join(dir, "a.html"))
			require.NoError(t, err)
			assert.Equal(t, "a", string(data))

			info, err := fsys.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			entries, err := fsys.ReadDir(dir)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.ElementsMatch(t, []string{"a.html", "b.html"}, names)

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err, "reading a directory should fail")

			_, err = fsys.Stat(filepath.Join(root, "missing"))
			assert.Error(t, err)
		})
	}
}
