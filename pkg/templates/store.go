package templates

import (
	"io/fs"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

const defaultFileMode fs.FileMode = 0644

// Store loads and saves documents.
type Store struct {
	fs types.FS
}

// NewStore creates a store on fsys.
func NewStore(fsys types.FS) *Store {
	return &Store{fs: fsys}
}

// Load reads the document for entry.
func (s *Store) Load(entry Entry) (types.Document, error) {
	data, err := s.fs.ReadFile(entry.Path)
	if err != nil {
		return types.Document{}, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", entry.Path).
			WithDetail("document", entry.Name).
			WithDetail("path", entry.Path)
	}
	return types.Document{Name: entry.Name, Path: entry.Path, Text: string(data)}, nil
}

// Save writes doc back to its path with the file's current mode.
func (s *Store) Save(doc types.Document) error {
	mode := defaultFileMode
	if info, err := s.fs.Stat(doc.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := s.fs.WriteFile(doc.Path, []byte(doc.Text), mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", doc.Path).
			WithDetail("document", doc.Name).
			WithDetail("path", doc.Path)
	}
	return nil
}
