package main

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/notion-portfolio/internal/metrics"
	"github.com/Zachkp/notion-portfolio/internal/repos"
	"github.com/Zachkp/notion-portfolio/internal/theme"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"stars": func(n int) string { return humanize.Comma(int64(n)) },
	// The card only has room for two topics
	"topics": func(t []string) string {
		if len(t) > 2 {
			t = t[:2]
		}
		return strings.Join(t, ", ")
	},
}

func newRouter(s *server) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"),
	))

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	site := r.Group("/")
	site.Use(sessionMiddleware(s.cfg.CookieSecure))

	// Home page route
	site.GET("/", s.handleIndex)

	// HTMX theme toggle - persists the preference and returns the button
	site.POST("/theme", s.handleTheme)

	// HTMX repository panel - returns the card grid
	site.GET("/repos", s.handleRepos)

	return r
}

func (s *server) handleIndex(c *gin.Context) {
	pref := theme.Initial(s.themeStorage(c))

	username := s.cfg.GitHubUser
	var list []repos.Summary
	if loader, ok := s.panels.Peek(sessionID(c)); ok {
		if u, ok := loader.Username(); ok {
			username = u
		}
		list = loader.Repos()
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Theme":             pref,
		"Nav":               Nav,
		"ProfileName":       ProfileName,
		"ProfileTagline":    ProfileTagline,
		"ProfileImage":      ProfileImage,
		"SplineScene":       SplineScene,
		"HeroIntro":         HeroIntro,
		"AboutMe":           AboutMe,
		"AboutFacts":        AboutFacts,
		"Jobs":              Jobs,
		"Projects":          Projects,
		"Skills":            Skills,
		"Blogs":             Blogs,
		"SocialLinks":       SocialLinks,
		"CurrentlyLearning": CurrentlyLearning,
		"Toolbox":           Toolbox,
		"NowPlaying":        NowPlaying,
		"Footer":            Footer,
		"GitHubUser":        username,
		"Repos":             list,
	})
}

// responseSink flips the root "dark" class in the browser through an HTMX
// event carried on the response.
type responseSink struct {
	c *gin.Context
}

func (r responseSink) Apply(p theme.Preference) {
	payload, _ := json.Marshal(gin.H{"theme-changed": gin.H{"theme": p}})
	r.c.Header("HX-Trigger", string(payload))
}

func (s *server) handleTheme(c *gin.Context) {
	var explicit theme.Preference
	if v := c.PostForm("theme"); v != "" {
		p, ok := theme.Parse(v)
		if !ok {
			c.String(http.StatusBadRequest, "unknown theme")
			return
		}
		explicit = p
	}

	ctrl := theme.NewController(s.themeStorage(c), responseSink{c: c})

	var (
		next theme.Preference
		err  error
	)
	if explicit != "" {
		next, err = explicit, ctrl.Set(explicit)
	} else {
		next, err = ctrl.Toggle()
	}

	// The new theme still applies for this page; it just won't survive a reload
	if err != nil {
		log.Printf("Error saving theme preference: %v", err)
		metrics.ThemePersistErrors.Inc()
	}
	metrics.ThemeChanges.WithLabelValues(next.String()).Inc()

	if c.GetHeader("HX-Request") != "true" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "theme-toggle.html", gin.H{"Theme": next})
}

// The username is passed through untouched, even when empty; bad ones just
// fail upstream and leave the grid as it was. Only a missing parameter means
// the configured default.
func (s *server) handleRepos(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok {
		username = s.cfg.GitHubUser
	}

	loader := s.panels.Get(sessionID(c))
	loader.Load(c.Request.Context(), username)

	// Render what the session displays now, which may be a newer request's list
	c.HTML(http.StatusOK, "repos.html", gin.H{"Repos": loader.Repos()})
}

func (s *server) handleHealth(c *gin.Context) {
	if s.prefs != nil {
		if err := s.prefs.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
