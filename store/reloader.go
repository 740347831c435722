package store

import (
	"context"
	"log"
	"sync"
	"time"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/hooks"
	"github.com/carnote/contentfilter/utils"
)

// ReloaderConfig configures the periodic word-list reloader.
type ReloaderConfig struct {
	// Interval is how often to reload. Zero means the default.
	Interval time.Duration

	// Retry controls per-cycle retry behavior against a flaky backend.
	Retry utils.RetryConfig

	// Hooks receives reload events. Nil means no hooks.
	Hooks hooks.Hooks
}

// DefaultReloaderConfig returns the default reloader configuration.
func DefaultReloaderConfig() ReloaderConfig {
	retry := utils.DefaultRetryConfig()
	retry.RetryIf = contentfilter.IsRetryable

	return ReloaderConfig{
		Interval: 5 * time.Minute,
		Retry:    retry,
	}
}

// Reloader periodically loads word lists from a Store and swaps them into
// a dict.Holder. A failed cycle keeps the previous snapshot active; filter
// calls never see a partial or empty dictionary.
type Reloader struct {
	store  Store
	holder *dict.Holder
	config ReloaderConfig

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool

	// logger can be customized
	logger Logger
}

// Logger interface for logging.
type Logger interface {
	Printf(format string, v ...any)
}

// defaultLogger wraps standard log.
type defaultLogger struct{}

func (defaultLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// NewReloader creates a reloader feeding the given holder from the store.
func NewReloader(s Store, holder *dict.Holder, config ReloaderConfig) *Reloader {
	if config.Interval == 0 {
		config.Interval = 5 * time.Minute
	}
	if config.Hooks == nil {
		config.Hooks = hooks.NopHooks{}
	}
	// Only fill the classifier; MaxRetries zero means no retries and the
	// retryer defaults its own delays, so the rest of Retry stays as given.
	if config.Retry.RetryIf == nil {
		config.Retry.RetryIf = contentfilter.IsRetryable
	}

	return &Reloader{
		store:  s,
		holder: holder,
		config: config,
		logger: defaultLogger{},
	}
}

// SetLogger sets a custom logger.
func (r *Reloader) SetLogger(logger Logger) {
	r.logger = logger
}

// Start runs an immediate reload and then begins the periodic loop. It
// returns the first reload's error so callers can fail fast on a
// misconfigured store; the loop runs either way until Stop.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return contentfilter.ErrReloaderClosed
	}
	if r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = true
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.mu.Unlock()

	err := r.ReloadOnce(r.ctx)

	r.wg.Add(1)
	go r.loop()

	return err
}

// Stop halts the periodic loop and waits for an in-flight reload.
func (r *Reloader) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

func (r *Reloader) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			if err := r.ReloadOnce(r.ctx); err != nil {
				r.logger.Printf("contentfilter: word-list reload from %s failed: %v", r.store.Name(), err)
			}
		}
	}
}

// ReloadOnce performs one load-validate-swap cycle. On success the holder
// publishes the new snapshot; on failure the previous snapshot stays
// active and the failure hook fires.
func (r *Reloader) ReloadOnce(ctx context.Context) error {
	start := time.Now()
	attempts := 0

	var lists dict.Wordlists
	retryer := utils.NewRetryer(r.config.Retry)
	err := retryer.Do(ctx, func() error {
		attempts++
		loaded, loadErr := r.store.LoadWordlists(ctx)
		if loadErr != nil {
			return loadErr
		}
		if validateErr := Validate(loaded); validateErr != nil {
			return validateErr
		}
		lists = loaded
		return nil
	})
	if err != nil {
		hookErr := r.config.Hooks.OnReloadFailed(ctx, hooks.ReloadFailedEvent{
			Source:    r.store.Name(),
			Err:       err,
			Attempts:  attempts,
			Timestamp: time.Now(),
		})
		if hookErr != nil {
			r.logger.Printf("contentfilter: reload-failed hook returned error: %v", hookErr)
		}
		return err
	}

	snap := dict.NewSnapshot(lists)
	old := r.holder.Swap(snap)

	oldVersion := ""
	if old != nil {
		oldVersion = old.Version()
	}

	hookErr := r.config.Hooks.OnWordlistReloaded(ctx, hooks.WordlistReloadedEvent{
		Source:     r.store.Name(),
		OldVersion: oldVersion,
		NewVersion: snap.Version(),
		WordCount:  lists.Count(),
		Duration:   time.Since(start),
		Timestamp:  time.Now(),
	})
	if hookErr != nil {
		r.logger.Printf("contentfilter: reloaded hook returned error: %v", hookErr)
	}

	r.logger.Printf("contentfilter: wordlists reloaded from %s: version %s -> %s (%d words)",
		r.store.Name(), utils.TruncateHash(oldVersion, 8), utils.TruncateHash(snap.Version(), 8), lists.Count())

	return nil
}
