package templates

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// Source describes where documents come from.
type Source struct {
	FS  types.FS
	Dir string
	// Files is an allow-list of names inside Dir. When empty, Glob is used.
	Files []string
	Glob  string
	// Exclude names are listed but never processed.
	Exclude []string
}

// Entry is one resolved document. Status is empty for documents that should
// be processed, otherwise StatusNotFound or StatusExcluded.
type Entry struct {
	Name   string
	Path   string
	Status types.DocumentStatus
}

// Pending reports whether the entry should be loaded and processed.
func (e Entry) Pending() bool {
	return e.Status == ""
}

// Resolve returns the documents to work on. Explicit args are file paths and
// bypass the directory entirely; each must exist. Otherwise Dir must exist
// and the allow-list or glob selects names in it. Every check runs before
// any entry is returned, so a failure happens before any document is
// touched.
func (s *Source) Resolve(args []string) ([]Entry, error) {
	logger := logging.GetLogger("templates.source")

	if len(args) > 0 {
		return s.resolveArgs(args)
	}

	if err := s.checkDir(); err != nil {
		return nil, err
	}

	var entries []Entry
	var err error
	if len(s.Files) > 0 {
		entries, err = s.resolveList()
	} else {
		entries, err = s.resolveGlob()
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("dir", s.Dir).
		Int("count", len(entries)).
		Msg("Resolved templates")
	return entries, nil
}

func (s *Source) resolveArgs(args []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(args))
	for _, arg := range args {
		info, err := s.FS.Stat(arg)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(err, errors.ErrFileNotFound, "template %s does not exist", arg).
					WithDetail("path", arg)
			}
			return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot access template %s", arg).
				WithDetail("path", arg)
		}
		if info.IsDir() {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s is a directory", arg).
				WithDetail("path", arg)
		}
		entries = append(entries, Entry{Name: filepath.Base(arg), Path: arg})
	}
	return entries, nil
}

func (s *Source) checkDir() error {
	info, err := s.FS.Stat(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrDirNotFound, "template directory %s does not exist", s.Dir).
				WithDetail("path", s.Dir)
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot access template directory %s", s.Dir).
			WithDetail("path", s.Dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDirNotFound, "%s is not a directory", s.Dir).
			WithDetail("path", s.Dir)
	}
	return nil
}

// resolveList keeps the allow-list order. Missing names are reported, not
// fatal.
func (s *Source) resolveList() ([]Entry, error) {
	entries := make([]Entry, 0, len(s.Files))
	for _, name := range s.Files {
		entry := Entry{Name: name, Path: filepath.Join(s.Dir, name)}
		switch {
		case s.excluded(name):
			entry.Status = types.StatusExcluded
		case !s.exists(entry.Path):
			entry.Status = types.StatusNotFound
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Source) resolveGlob() ([]Entry, error) {
	dirEntries, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read template directory %s", s.Dir).
			WithDetail("path", s.Dir)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		matched, err := filepath.Match(s.Glob, name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid glob %q", s.Glob)
		}
		if !matched {
			continue
		}
		entry := Entry{Name: name, Path: filepath.Join(s.Dir, name)}
		if s.excluded(name) {
			entry.Status = types.StatusExcluded
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func (s *Source) excluded(name string) bool {
	for _, ex := range s.Exclude {
		if ex == name {
			return true
		}
	}
	return false
}

func (s *Source) exists(path string) bool {
	info, err := s.FS.Stat(path)
	return err == nil && !info.IsDir()
}

// Match reports whether name would be processed by Resolve with no explicit
// args: it is in the allow-list, or matches the glob, and is not excluded.
func (s *Source) Match(name string) bool {
	if s.excluded(name) {
		return false
	}
	if len(s.Files) > 0 {
		for _, f := range s.Files {
			if f == name {
				return true
			}
		}
		return false
	}
	matched, err := filepath.Match(s.Glob, name)
	return err == nil && matched
}
