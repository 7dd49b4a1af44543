package repos

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Zachkp/notion-portfolio/internal/metrics"
)

// Outcome is how a single Load settled.
type Outcome int

const (
	// Applied means the result replaced the displayed list.
	Applied Outcome = iota
	// Abandoned means a newer Load started before this one settled.
	Abandoned
	// Failed means the fetch errored and the displayed list was kept.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Abandoned:
		return "abandoned"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Loader holds one visitor's repository panel. Only the most recently started
// Load may replace the displayed list.
type Loader struct {
	fetcher Fetcher
	log     *slog.Logger

	mu       sync.Mutex
	seq      uint64
	username string
	repos    []Summary
}

func NewLoader(fetcher Fetcher, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{fetcher: fetcher, log: log}
}

// Load fetches the repositories of username and applies them unless a newer
// Load started in the meantime. Errors are absorbed: the panel is decorative,
// so a failure only means the list does not change.
//
// ctx cancellation does not abort the upstream call; a result that arrives
// after the caller went away is still applied if it is the latest.
func (l *Loader) Load(ctx context.Context, username string) Outcome {
	l.mu.Lock()
	l.seq++
	my := l.seq
	l.username = username
	l.mu.Unlock()

	start := time.Now()
	result, err := l.fetcher.Recent(context.WithoutCancel(ctx), username)
	metrics.RepoFetchDuration.Observe(time.Since(start).Seconds())

	outcome := l.settle(my, result, err)
	metrics.RepoLoads.WithLabelValues(outcome.String()).Inc()

	switch outcome {
	case Abandoned:
		l.log.Debug("discarding stale repository result", "username", username, "seq", my)
	case Failed:
		l.log.Debug("repository fetch failed", "username", username, "error", err)
	}
	return outcome
}

func (l *Loader) settle(my uint64, result []Summary, err error) Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if my != l.seq {
		return Abandoned
	}
	if err != nil {
		return Failed
	}
	l.repos = result
	return Applied
}

// Repos returns a copy of the displayed list.
func (l *Loader) Repos() []Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Summary, len(l.repos))
	copy(out, l.repos)
	return out
}

// Username returns the most recently requested username. ok is false before
// the first Load; an empty username that was actually requested reports ok.
func (l *Loader) Username() (username string, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.username, l.seq > 0
}
