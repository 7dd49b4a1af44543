package repos

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Zachkp/notion-portfolio/internal/metrics"
)

// Panels keeps one Loader per visitor session and forgets sessions that have
// been idle longer than ttl.
type Panels struct {
	fetcher Fetcher
	log     *slog.Logger
	ttl     time.Duration
	now     func() time.Time

	mu     sync.Mutex
	panels map[string]*panel
}

type panel struct {
	loader   *Loader
	lastSeen time.Time
}

func NewPanels(fetcher Fetcher, ttl time.Duration, log *slog.Logger) *Panels {
	if log == nil {
		log = slog.Default()
	}
	return &Panels{
		fetcher: fetcher,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
		panels:  make(map[string]*panel),
	}
}

// Get returns the Loader for sessionID, creating it on first use.
func (p *Panels) Get(sessionID string) *Loader {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.panels[sessionID]
	if !ok {
		entry = &panel{loader: NewLoader(p.fetcher, p.log.With("session", sessionID))}
		p.panels[sessionID] = entry
		metrics.ActiveSessions.Set(float64(len(p.panels)))
	}
	entry.lastSeen = p.now()
	return entry.loader
}

// Peek returns the Loader for sessionID without creating or touching it.
func (p *Panels) Peek(sessionID string) (*Loader, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.panels[sessionID]
	if !ok {
		return nil, false
	}
	return entry.loader, true
}

func (p *Panels) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.panels)
}

// Sweep drops sessions not seen since now-ttl and returns how many it removed.
// A Load still running on a dropped Loader settles into that Loader only.
func (p *Panels) Sweep(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	removed := 0
	for id, entry := range p.panels {
		if now.Sub(entry.lastSeen) > p.ttl {
			delete(p.panels, id)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(p.panels)))
	return removed
}

// Janitor sweeps on every tick until ctx is done.
func (p *Panels) Janitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if n := p.Sweep(t); n > 0 {
				p.log.Debug("swept idle repository panels", "removed", n)
			}
		}
	}
}
