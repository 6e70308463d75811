// Package atlas holds the process-lifetime snapshot of the two input files.
// The snapshot is populated once and read-only afterward, so concurrent
// sessions may share it freely.
package atlas

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hidden-champions/county-atlas/internal/boundary"
	"github.com/hidden-champions/county-atlas/internal/config"
	"github.com/hidden-champions/county-atlas/internal/dataset"
)

// Snapshot is the immutable in-memory form of the county dataset and
// boundary file. All views recompute from it on every request.
type Snapshot struct {
	Records  []dataset.CountyRecord
	Counties []boundary.County
	LoadedAt time.Time
}

// Load reads both input files, in parallel. Either file failing is fatal;
// there is no partial-load mode.
func Load(ctx context.Context, cfg config.DataConfig) (*Snapshot, error) {
	snap := &Snapshot{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := dataset.Load(cfg.CSVPath)
		if err != nil {
			return err
		}
		snap.Records = records
		return nil
	})
	g.Go(func() error {
		counties, err := boundary.LoadShapefile(cfg.ShapefilePath)
		if err != nil {
			return err
		}
		snap.Counties = counties
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.LoadedAt = time.Now().UTC()
	zap.L().Info("atlas snapshot ready",
		zap.Int("records", len(snap.Records)),
		zap.Int("counties", len(snap.Counties)),
	)
	return snap, nil
}

var (
	sharedOnce sync.Once
	sharedSnap *Snapshot
	sharedErr  error
)

// Shared returns the process-wide snapshot, loading it on first call. All
// access to the cached tables routes through here; later calls return the
// same snapshot regardless of the paths given.
func Shared(ctx context.Context, cfg config.DataConfig) (*Snapshot, error) {
	sharedOnce.Do(func() {
		sharedSnap, sharedErr = Load(ctx, cfg)
	})
	return sharedSnap, sharedErr
}
