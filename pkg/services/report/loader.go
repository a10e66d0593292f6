package report

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
	"github.com/modelyard/reportdeck/pkg/store/artifact"
)

// Loader resolves a report reference to its renderable parts. A
// single-file report yields one part; a directory report yields one part
// per child file, sorted by file name. A missing path is a NotFoundError
// like every other absence in the system.
type Loader interface {
	Load(ctx context.Context, ref domain.ReportRef) (*domain.Report, error)
}

type loader struct {
	store artifact.Store

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// cacheEntry memoizes loaded content keyed by report path; ModTime is
// revalidated against the store on every load, so re-uploaded artifacts
// are picked up without a restart.
type cacheEntry struct {
	modTime time.Time
	report  *domain.Report
}

func NewLoader(store artifact.Store) Loader {
	return &loader{
		store: store,
		cache: make(map[string]cacheEntry),
	}
}

func (l *loader) Load(ctx context.Context, ref domain.ReportRef) (*domain.Report, error) {
	reportPath := ref.Path()

	info, err := l.store.Stat(ctx, reportPath)
	if err != nil {
		return nil, err
	}
	if info.Kind == artifact.KindMissing {
		return nil, domain.NewNotFoundError("report", reportPath)
	}

	l.mu.RLock()
	cached, ok := l.cache[reportPath]
	l.mu.RUnlock()
	if ok && cached.modTime.Equal(info.ModTime) {
		zerolog.Ctx(ctx).Debug().Str("report", reportPath).Msg("report cache hit")
		return cached.report, nil
	}

	var loaded *domain.Report
	switch info.Kind {
	case artifact.KindFile:
		loaded, err = l.loadFile(ctx, ref, reportPath)
	case artifact.KindDir:
		loaded, err = l.loadDir(ctx, ref, reportPath)
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[reportPath] = cacheEntry{modTime: info.ModTime, report: loaded}
	l.mu.Unlock()

	return loaded, nil
}

func (l *loader) loadFile(ctx context.Context, ref domain.ReportRef, reportPath string) (*domain.Report, error) {
	content, err := l.store.Read(ctx, reportPath)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Ref: ref,
		Parts: []domain.ReportPart{{
			Name:    ref.Name,
			Label:   catalog.ReportDisplayName(ref.Name),
			Content: string(content),
		}},
	}, nil
}

func (l *loader) loadDir(ctx context.Context, ref domain.ReportRef, reportPath string) (*domain.Report, error) {
	entries, err := l.store.List(ctx, reportPath)
	if err != nil {
		return nil, err
	}

	// Store listings are name-sorted already; that order is the tab order.
	var parts []domain.ReportPart
	for _, entry := range entries {
		if entry.Dir {
			continue
		}
		content, err := l.store.Read(ctx, path.Join(reportPath, entry.Name))
		if err != nil {
			return nil, err
		}
		parts = append(parts, domain.ReportPart{
			Name:    entry.Name,
			Label:   catalog.ReportDisplayName(entry.Name),
			Content: string(content),
		})
	}

	if len(parts) == 0 {
		return nil, domain.NewNotFoundError("report parts", reportPath)
	}

	return &domain.Report{
		Ref:       ref,
		Composite: true,
		Parts:     parts,
	}, nil
}
