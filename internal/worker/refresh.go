package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/internal/video"
)

// RefreshJob reloads the catalog and safety rules from storage and swaps
// them into the live stores. Rules are swapped before the catalog: the
// snapshot version changes last, so cached plans built on the old rules
// are invalidated only once the new rules are already live.
type RefreshJob struct {
	config RefreshConfig
	logger zerolog.Logger

	catalogRepo catalog.Repository
	rulesRepo   safety.Repository

	catalogStore *catalog.Store
	rulesStore   *safety.Store

	// videoClient is optional; directory refs supplement stored ones.
	videoClient *video.DirectoryClient

	// videoSink is optional; fetched directory refs are written back so
	// other replicas pick them up from storage on their next refresh.
	videoSink VideoSink

	metrics *RefreshMetrics
}

// VideoSink persists video references fetched from the directory.
type VideoSink interface {
	ReplaceVideos(ctx context.Context, refs []catalog.VideoRef) error
}

// RefreshMetrics tracks refresh job statistics.
type RefreshMetrics struct {
	mu sync.RWMutex

	TotalRefreshes     int64
	SuccessfulRefresh  int64
	FailedRefreshes    int64
	DirectoryRefreshes int64

	LastRefreshAt       time.Time
	LastRefreshDuration time.Duration
	LastSnapshotVersion string
}

// RefreshJobConfig holds configuration for creating a RefreshJob.
type RefreshJobConfig struct {
	Config       RefreshConfig
	Logger       zerolog.Logger
	CatalogRepo  catalog.Repository
	RulesRepo    safety.Repository
	CatalogStore *catalog.Store
	RulesStore   *safety.Store
	VideoClient  *video.DirectoryClient
	VideoSink    VideoSink
}

// NewRefreshJob creates a new refresh job processor.
func NewRefreshJob(cfg RefreshJobConfig) *RefreshJob {
	return &RefreshJob{
		config:       cfg.Config.withDefaults(),
		logger:       cfg.Logger.With().Str("component", "refresh_job").Logger(),
		catalogRepo:  cfg.CatalogRepo,
		rulesRepo:    cfg.RulesRepo,
		catalogStore: cfg.CatalogStore,
		rulesStore:   cfg.RulesStore,
		videoClient:  cfg.VideoClient,
		videoSink:    cfg.VideoSink,
		metrics:      &RefreshMetrics{},
	}
}

// RefreshResult contains the outcome of one refresh pass.
type RefreshResult struct {
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	SnapshotVersion string
	Foods           int
	Exercises       int
	Videos          int
	Conditions      int
}

// Run executes one refresh pass.
func (j *RefreshJob) Run(ctx context.Context) (*RefreshResult, error) {
	startTime := time.Now()

	runCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	j.logger.Info().Msg("starting catalog refresh")

	rules, err := safety.LoadRuleSet(runCtx, j.rulesRepo)
	if err != nil {
		j.recordFailure()
		j.logger.Error().Err(err).Msg("rule refresh failed")
		return nil, err
	}

	snapshot, err := catalog.LoadSnapshot(runCtx, j.catalogRepo)
	if err != nil {
		j.recordFailure()
		j.logger.Error().Err(err).Msg("catalog refresh failed")
		return nil, err
	}

	if j.videoClient != nil {
		snapshot = j.mergeDirectoryRefs(runCtx, snapshot)
	}

	// Rules first, then the snapshot whose version keys the plan cache.
	j.rulesStore.Swap(rules)
	j.catalogStore.Swap(snapshot)

	result := &RefreshResult{
		StartTime:       startTime,
		EndTime:         time.Now(),
		SnapshotVersion: snapshot.Version(),
		Foods:           len(snapshot.Foods()),
		Exercises:       len(snapshot.Exercises()),
		Videos:          len(snapshot.Videos()),
		Conditions:      len(rules.Conditions()),
	}
	result.Duration = result.EndTime.Sub(startTime)

	j.recordSuccess(result)

	j.logger.Info().
		Str("snapshot_version", result.SnapshotVersion).
		Int("foods", result.Foods).
		Int("exercises", result.Exercises).
		Int("videos", result.Videos).
		Int("conditions", result.Conditions).
		Dur("duration", result.Duration).
		Msg("catalog refresh completed")

	return result, nil
}

// RunPeriodic runs refresh passes on the configured interval until the
// context is cancelled. Individual failures are logged and the previous
// snapshot stays live.
func (j *RefreshJob) RunPeriodic(ctx context.Context) {
	ticker := time.NewTicker(j.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("stopping periodic refresh")
			return
		case <-ticker.C:
			if _, err := j.Run(ctx); err != nil {
				j.logger.Warn().Err(err).Msg("periodic refresh failed, keeping previous snapshot")
			}
		}
	}
}

// mergeDirectoryRefs prepends refs from the video directory so they win
// over stored ones; a directory failure keeps the stored refs.
func (j *RefreshJob) mergeDirectoryRefs(ctx context.Context, snapshot *catalog.Snapshot) *catalog.Snapshot {
	refs, err := j.videoClient.FetchRefs(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("video directory fetch failed, using stored refs")
		return snapshot
	}

	j.metrics.mu.Lock()
	j.metrics.DirectoryRefreshes++
	j.metrics.mu.Unlock()

	if j.videoSink != nil && len(refs) > 0 {
		if err := j.videoSink.ReplaceVideos(ctx, refs); err != nil {
			j.logger.Warn().Err(err).Msg("failed to persist directory refs")
		}
	}

	merged := make([]catalog.VideoRef, 0, len(refs)+len(snapshot.Videos()))
	merged = append(merged, refs...)
	merged = append(merged, snapshot.Videos()...)
	return catalog.NewSnapshot(snapshot.Foods(), snapshot.Exercises(), merged)
}

func (j *RefreshJob) recordSuccess(result *RefreshResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRefreshes++
	j.metrics.SuccessfulRefresh++
	j.metrics.LastRefreshAt = result.EndTime
	j.metrics.LastRefreshDuration = result.Duration
	j.metrics.LastSnapshotVersion = result.SnapshotVersion
}

func (j *RefreshJob) recordFailure() {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRefreshes++
	j.metrics.FailedRefreshes++
}

// GetMetrics returns a copy of the current metrics.
func (j *RefreshJob) GetMetrics() RefreshMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return RefreshMetrics{
		TotalRefreshes:      j.metrics.TotalRefreshes,
		SuccessfulRefresh:   j.metrics.SuccessfulRefresh,
		FailedRefreshes:     j.metrics.FailedRefreshes,
		DirectoryRefreshes:  j.metrics.DirectoryRefreshes,
		LastRefreshAt:       j.metrics.LastRefreshAt,
		LastRefreshDuration: j.metrics.LastRefreshDuration,
		LastSnapshotVersion: j.metrics.LastSnapshotVersion,
	}
}

// MetricsSnapshot returns the current metrics as a map.
func (j *RefreshJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_refreshes":       m.TotalRefreshes,
		"successful_refreshes":  m.SuccessfulRefresh,
		"failed_refreshes":      m.FailedRefreshes,
		"directory_refreshes":   m.DirectoryRefreshes,
		"last_refresh_at":       m.LastRefreshAt,
		"last_refresh_duration": m.LastRefreshDuration.String(),
		"last_snapshot_version": m.LastSnapshotVersion,
	}
}
