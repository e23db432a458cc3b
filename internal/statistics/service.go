// Package statistics wires the fetch, cache, decompression and aggregation
// stages into the ranked report the CLI renders.
package statistics

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/gioannidis/deb-package-statistics/internal/arch"
	"github.com/gioannidis/deb-package-statistics/internal/cache"
	"github.com/gioannidis/deb-package-statistics/internal/config"
	"github.com/gioannidis/deb-package-statistics/internal/contents"
	"github.com/gioannidis/deb-package-statistics/internal/gzutil"
	"github.com/gioannidis/deb-package-statistics/internal/logtrace"
	"github.com/gioannidis/deb-package-statistics/internal/mirror"
)

// Parsed mappings are memoized in-process so a long-lived embedder asking for
// different K values does not re-parse the same index.
const (
	memoTTL     = time.Hour
	memoCleanup = 10 * time.Minute
)

// Service computes package statistics for supported architectures. Safe for
// concurrent use: invocations share nothing but the synchronized memo.
type Service struct {
	cfg    *config.Config
	mirror *mirror.Client
	store  *cache.Store
	memo   *gocache.Cache
}

// Report is the ranked statistics output for one architecture
type Report struct {
	Architecture string
	// TotalPackages is the number of distinct packages in the index, which
	// may exceed len(Entries) when a Top selection is in effect.
	TotalPackages int
	Entries       []contents.PackageCount
}

// New creates a statistics service from the given configuration
func New(cfg *config.Config) *Service {
	return &Service{
		cfg:    cfg,
		mirror: mirror.NewClient(cfg.Mirror.BaseURL, time.Duration(cfg.Mirror.Timeout)*time.Second, cfg.Mirror.MaxRetries),
		store:  cache.NewStore(cfg.Cache.Dir),
		memo:   gocache.New(memoTTL, memoCleanup),
	}
}

// Store exposes the download cache, for cache management commands
func (s *Service) Store() *cache.Store {
	return s.store
}

// TopPackages returns the packages owning the most files for the given
// architecture. refresh forces a re-download even when a cached blob exists.
func (s *Service) TopPackages(ctx context.Context, architecture string, sel contents.Selection, refresh bool) (*Report, error) {
	if !arch.IsSupported(architecture) {
		return nil, errors.Wrap(arch.ErrUnsupported, architecture)
	}

	counts, err := s.countsFor(ctx, architecture, refresh)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Architecture:  architecture,
		TotalPackages: len(counts),
		Entries:       contents.TopK(counts, sel),
	}
	logtrace.Debug(ctx, "selected top packages", logtrace.Fields{
		logtrace.FieldModule:       "statistics",
		logtrace.FieldArchitecture: architecture,
		logtrace.FieldPackages:     len(report.Entries),
	})
	return report, nil
}

func (s *Service) countsFor(ctx context.Context, architecture string, refresh bool) (map[string]int, error) {
	if !refresh {
		if memoized, ok := s.memo.Get(architecture); ok {
			return memoized.(map[string]int), nil
		}
	}

	blobPath := s.store.Path(architecture)
	if refresh || !s.store.Has(architecture) {
		if err := s.store.EnsureDir(); err != nil {
			return nil, err
		}
		logtrace.Info(ctx, "downloading contents index", logtrace.Fields{
			logtrace.FieldModule:       "statistics",
			logtrace.FieldArchitecture: architecture,
			logtrace.FieldURL:          s.mirror.ContentsURL(architecture),
		})
		if err := s.mirror.Download(ctx, architecture, blobPath); err != nil {
			return nil, errors.Wrap(err, "download contents index")
		}
	} else {
		logtrace.Debug(ctx, "using cached contents index", logtrace.Fields{
			logtrace.FieldModule:       "statistics",
			logtrace.FieldArchitecture: architecture,
			logtrace.FieldPath:         blobPath,
		})
	}

	reader, err := gzutil.Open(blobPath)
	if err != nil {
		return nil, errors.Wrap(err, "decompress contents index")
	}
	defer reader.Close()

	counts, err := contents.CountFilesReader(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "parse contents index for %s", architecture)
	}

	s.memo.Set(architecture, counts, gocache.DefaultExpiration)
	return counts, nil
}
