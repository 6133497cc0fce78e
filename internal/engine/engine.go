// Package engine is the task execution and retry core: it fans probes
// out over the configured targets, assembles one log entry per
// execution, and maintains the bounded rolling history.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/keivanh/keepwarm/internal/domain"
	"github.com/keivanh/keepwarm/internal/probe"
	"github.com/keivanh/keepwarm/internal/repo"
)

const timestampLayout = "2006-01-02 15:04:05 MST"

type Engine struct {
	logger  *zap.Logger
	state   *repo.State
	checker probe.Checker
	loc     *time.Location
	now     func() time.Time

	// serializes the read-modify-write on the stored history so a manual
	// run overlapping a cron run cannot drop entries. Cross-instance
	// coordination stays out of scope.
	recordMu sync.Mutex
}

func New(logger *zap.Logger, state *repo.State, checker probe.Checker, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		logger:  logger,
		state:   state,
		checker: checker,
		loc:     loc,
		now:     time.Now,
	}
}

// Run is the full pipeline behind both triggers: load targets and policy
// fresh from the store, execute, record. Returns nil without recording
// when no targets are configured. Store I/O errors propagate.
func (e *Engine) Run(ctx context.Context, trigger domain.TriggerKind) (*domain.LogEntry, error) {
	targets, err := e.state.Targets(ctx)
	if err != nil {
		return nil, err
	}
	policy, err := e.state.Policy(ctx)
	if err != nil {
		return nil, err
	}

	entry := e.ExecuteAll(ctx, targets, policy, trigger)
	if entry == nil {
		e.logger.Debug("run_skipped_no_targets", zap.String("trigger", string(trigger)))
		return nil, nil
	}
	if err := e.Record(ctx, entry); err != nil {
		return nil, err
	}

	up := 0
	for _, r := range entry.Results {
		if r.OK {
			up++
		}
	}
	e.logger.Info("run_complete",
		zap.String("trigger", string(trigger)),
		zap.Int64("entry_id", entry.ID),
		zap.Int("targets", len(entry.Results)),
		zap.Int("up", up),
	)
	return entry, nil
}

// ExecuteAll probes every target concurrently under the given policy and
// assembles a LogEntry. Results land at the index of their target, so
// output order always matches input order regardless of completion
// order. Returns nil for an empty target list.
func (e *Engine) ExecuteAll(ctx context.Context, targets []string, policy domain.RetryPolicy, trigger domain.TriggerKind) *domain.LogEntry {
	if len(targets) == 0 {
		return nil
	}
	start := e.now()
	runner := &probe.Retry{
		Checker:    e.checker,
		MaxRetries: policy.MaxRetries,
		Delay:      policy.Delay(),
	}

	results := make([]domain.ProbeResult, len(targets))
	var wg sync.WaitGroup
	for i, url := range targets {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			results[i] = runner.Run(ctx, url)
		}(i, url)
	}
	wg.Wait()

	return &domain.LogEntry{
		ID:        start.UnixMilli(),
		Timestamp: start.In(e.loc).Format(timestampLayout),
		Trigger:   trigger,
		Results:   results,
	}
}

// Record prepends the entry to the stored history, truncates to
// domain.MaxLogEntries, and writes the whole sequence back as one blob.
// A malformed stored history reads as empty.
func (e *Engine) Record(ctx context.Context, entry *domain.LogEntry) error {
	e.recordMu.Lock()
	defer e.recordMu.Unlock()

	history, err := e.state.History(ctx)
	if err != nil {
		return err
	}
	history = append([]domain.LogEntry{*entry}, history...)
	if len(history) > domain.MaxLogEntries {
		history = history[:domain.MaxLogEntries]
	}
	return e.state.SaveHistory(ctx, history)
}
