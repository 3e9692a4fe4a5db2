package testutil

import (
	"github.com/hedgehog-cloud/hublfix/pkg/filesystem"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}
