package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/askaround/internal/logger"
)

// GeoIndexer rebuilds the question location index from the database.
type GeoIndexer interface {
	RebuildGeoIndex(ctx context.Context) (int, error)
}

// ReindexJob rebuilds the geo index. OnReady fires after the first successful rebuild.
type ReindexJob struct {
	indexer GeoIndexer
	timeout time.Duration
	onReady func()
	once    sync.Once
}

// NewReindexJob creates a job bounded by timeout per run.
func NewReindexJob(indexer GeoIndexer, timeout time.Duration, onReady func()) *ReindexJob {
	return &ReindexJob{indexer: indexer, timeout: timeout, onReady: onReady}
}

// Run implements cron.Job.
func (j *ReindexJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	n, err := j.indexer.RebuildGeoIndex(ctx)
	if err != nil {
		logger.Log.Errorw("geo reindex failed", "error", err)
		return
	}
	logger.Log.Infow("geo index rebuilt", "entries", n, "duration", time.Since(start))

	if j.onReady != nil {
		j.once.Do(j.onReady)
	}
}
