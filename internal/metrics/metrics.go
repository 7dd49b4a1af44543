package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RepoLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_repo_loads_total",
		Help: "Repository panel loads by outcome (applied, abandoned, failed)",
	}, []string{"outcome"})
	RepoFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_repo_fetch_duration_seconds",
		Help:    "Time spent waiting on the upstream repository listing",
		Buckets: prometheus.DefBuckets,
	})
	ThemeChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_theme_changes_total",
		Help: "Theme preference changes by resulting theme",
	}, []string{"theme"})
	ThemePersistErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_theme_persist_errors_total",
		Help: "Theme changes that could not be written to storage",
	})
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "portfolio_active_sessions",
		Help: "Visitor sessions holding a repository panel",
	})
)

func init() {
	prometheus.MustRegister(
		RepoLoads,
		RepoFetchDuration,
		ThemeChanges,
		ThemePersistErrors,
		ActiveSessions,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
