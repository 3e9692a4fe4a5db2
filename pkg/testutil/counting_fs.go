package testutil

import (
	"io/fs"
	"sync"

	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// CountingFS wraps a types.FS and records every WriteFile call.
type CountingFS struct {
	types.FS

	mu     sync.Mutex
	writes []string
}

// NewCountingFS wraps fsys.
func NewCountingFS(fsys types.FS) *CountingFS {
	return &CountingFS{FS: fsys}
}

func (c *CountingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	c.mu.Lock()
	c.writes = append(c.writes, name)
	c.mu.Unlock()
	return c.FS.WriteFile(name, data, perm)
}

// Writes returns the written paths in call order.
func (c *CountingFS) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}
