package artifact

import (
	"context"
	"time"
)

type Kind int

const (
	KindMissing Kind = iota
	KindFile
	KindDir
)

// Info describes what sits at a path. ModTime is the invalidation token
// for cached report content; for directories it must reflect the newest
// child so a re-uploaded part is picked up.
type Info struct {
	Kind    Kind
	ModTime time.Time
}

type Entry struct {
	Name string
	Dir  bool
}

// Store abstracts the pre-rendered artifact tree
// (`<project>/<period>/<report>`). Paths are slash-separated and
// relative to the store root. List returns entries sorted by name and
// an empty slice (not an error) for a missing directory; Stat reports
// KindMissing (not an error) for a missing path.
type Store interface {
	List(ctx context.Context, path string) ([]Entry, error)
	Stat(ctx context.Context, path string) (Info, error)
	Read(ctx context.Context, path string) ([]byte, error)
}
