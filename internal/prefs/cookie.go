// Package prefs holds the durable backends for visitor preferences.
package prefs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieMaxAge keeps the preference cookie for a year.
const CookieMaxAge = 3600 * 24 * 365

// CookieStorage keeps each key in its own cookie on the visitor's browser.
// Cookies written during a request are visible to later Gets in that request.
type CookieStorage struct {
	c       *gin.Context
	secure  bool
	written map[string]string
}

func NewCookieStorage(c *gin.Context, secure bool) *CookieStorage {
	return &CookieStorage{c: c, secure: secure}
}

func (s *CookieStorage) Get(key string) (string, error) {
	if v, ok := s.written[key]; ok {
		return v, nil
	}
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	return v, err
}

func (s *CookieStorage) Set(key, value string) error {
	if s.written == nil {
		s.written = make(map[string]string)
	}
	s.written[key] = value

	// Not HttpOnly: the page script reads it to avoid a flash on load.
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, CookieMaxAge, "/", "", s.secure, false)
	return nil
}
