package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/notion-portfolio/internal/config"
	"github.com/Zachkp/notion-portfolio/internal/prefs"
	"github.com/Zachkp/notion-portfolio/internal/repos"
)

type server struct {
	cfg    config.Config
	panels *repos.Panels
	prefs  *prefs.SQLiteStore // nil when preferences live in cookies
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if gin.Mode() == gin.DebugMode {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	fetcher, err := repos.NewGitHub(cfg.GitHubAPIURL, cfg.GitHubTimeout)
	if err != nil {
		log.Fatal("Failed to set up GitHub client: ", err)
	}

	s := &server{
		cfg:    cfg,
		panels: repos.NewPanels(fetcher, cfg.SessionTTL, slog.Default()),
	}

	if cfg.PrefsBackend == config.BackendSQLite {
		s.prefs, err = prefs.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			log.Fatal("Failed to open preferences database: ", err)
		}
		defer s.prefs.Close()
		log.Printf("Theme preferences stored in %s", cfg.DatabasePath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.startHousekeeping(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
