package session

import (
	"net/http"
	"time"
)

// cookieOptions defines how session cookies are issued.
type cookieOptions struct {
	Name     string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

func setCookie(w http.ResponseWriter, value string, opts cookieOptions) {
	c := &http.Cookie{
		Name:     opts.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	}
	if opts.MaxAge > 0 {
		c.MaxAge = int(opts.MaxAge / time.Second)
	}

	http.SetCookie(w, c)
}

func clearCookie(w http.ResponseWriter, opts cookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
