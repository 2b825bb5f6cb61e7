// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cookies

import (
	"net/http"
	"time"
)

type Config struct {
	AccessName  string
	RefreshName string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	Secure      bool
	Domain      string
}

// Binder owns the attributes of the access and refresh cookies.
// Both cookies are always written or cleared together.
type Binder struct {
	cfg Config
}

func (b *Binder) SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, b.cookie(b.cfg.AccessName, access, b.cfg.AccessTTL))
	http.SetCookie(w, b.cookie(b.cfg.RefreshName, refresh, b.cfg.RefreshTTL))
}

func (b *Binder) ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{b.cfg.AccessName, b.cfg.RefreshName} {
		c := b.cookie(name, "", 0)
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		http.SetCookie(w, c)
	}
}

func (b *Binder) AccessToken(r *http.Request) string {
	return b.value(r, b.cfg.AccessName)
}

func (b *Binder) RefreshToken(r *http.Request) string {
	return b.value(r, b.cfg.RefreshName)
}

func (b *Binder) value(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (b *Binder) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   b.cfg.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   b.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func NewBinder(cfg Config) *Binder {
	b := new(Binder)
	b.cfg = cfg

	return b
}
