package reportfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelyard/reportdeck/pkg/store/artifact"
)

// Store serves report artifacts from a local directory tree.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) List(_ context.Context, p string) ([]artifact.Entry, error) {
	abs, err := s.abs(p)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(abs)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", p, err)
	}

	// os.ReadDir already sorts by name.
	entries := make([]artifact.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, artifact.Entry{Name: de.Name(), Dir: de.IsDir()})
	}
	return entries, nil
}

func (s *Store) Stat(_ context.Context, p string) (artifact.Info, error) {
	abs, err := s.abs(p)
	if err != nil {
		return artifact.Info{}, err
	}

	fi, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return artifact.Info{Kind: artifact.KindMissing}, nil
	}
	if err != nil {
		return artifact.Info{}, fmt.Errorf("failed to stat %q: %w", p, err)
	}

	if fi.IsDir() {
		modTime, err := s.newestChild(abs, fi.ModTime())
		if err != nil {
			return artifact.Info{}, fmt.Errorf("failed to stat %q: %w", p, err)
		}
		return artifact.Info{Kind: artifact.KindDir, ModTime: modTime}, nil
	}
	return artifact.Info{Kind: artifact.KindFile, ModTime: fi.ModTime()}, nil
}

func (s *Store) Read(_ context.Context, p string) ([]byte, error) {
	abs, err := s.abs(p)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", p, err)
	}
	return content, nil
}

// newestChild widens a directory's mtime to its newest entry, so that an
// overwritten report part invalidates cached content.
func (s *Store) newestChild(abs string, dirTime time.Time) (time.Time, error) {
	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return time.Time{}, err
	}

	newest := dirTime
	for _, de := range dirEntries {
		fi, err := de.Info()
		if err != nil {
			return time.Time{}, err
		}
		if fi.ModTime().After(newest) {
			newest = fi.ModTime()
		}
	}
	return newest, nil
}

// abs resolves a slash path against the root, refusing segments that
// would escape it.
func (s *Store) abs(p string) (string, error) {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("invalid path %q", p)
		}
	}
	return filepath.Join(s.root, filepath.FromSlash(p)), nil
}
