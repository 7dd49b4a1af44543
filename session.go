// session.go - anonymous visitor sessions and preference storage selection
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/notion-portfolio/internal/prefs"
	"github.com/Zachkp/notion-portfolio/internal/theme"
)

const (
	sessionCookie = "sid"
	sessionKey    = "sessionID"
)

// Gives every visitor an opaque id so the repository panel and server-side
// preferences can be keyed without knowing who they are.
func sessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			// No Max-Age: the session ends with the browser.
			c.SetCookie(sessionCookie, id, 0, "/", "", secure, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// themeStorage picks where the theme slot lives for this request.
func (s *server) themeStorage(c *gin.Context) theme.Storage {
	if s.prefs != nil {
		return s.prefs.Scope(c.Request.Context(), sessionID(c))
	}
	return prefs.NewCookieStorage(c, s.cfg.CookieSecure)
}

// Remove preference rows nobody has touched within the retention window
func pruneOldPreferences(ctx context.Context, store *prefs.SQLiteStore, retention time.Duration) {
	rowsDeleted, err := store.Prune(ctx, time.Now().Add(-retention))
	if err != nil {
		log.Printf("Error pruning old preferences: %v", err)
		return
	}
	if rowsDeleted > 0 {
		log.Printf("Removed %d preference rows older than %s", rowsDeleted, retention)
	}
}

// Background housekeeping: idle repository panels and stale preference rows.
func (s *server) startHousekeeping(ctx context.Context) {
	go s.panels.Janitor(ctx, max(s.cfg.SessionTTL/2, time.Second))

	if s.prefs == nil {
		return
	}
	go func() {
		pruneOldPreferences(ctx, s.prefs, s.cfg.PrefsRetention)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pruneOldPreferences(ctx, s.prefs, s.cfg.PrefsRetention)
			}
		}
	}()
}
