package session

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NewJar returns a cookie jar seeded with cookies in Cookie header form for base.
func NewJar(base *url.URL, header string) (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if header = strings.TrimSpace(header); header == "" {
		return jar, nil
	}

	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil, fmt.Errorf("parse session cookies: %w", err)
	}
	for _, c := range cookies {
		c.Path = "/"
	}
	jar.SetCookies(base, cookies)
	return jar, nil
}

// CookieHeader serializes the cookies the jar would send to base.
func CookieHeader(jar http.CookieJar, base *url.URL) string {
	if jar == nil {
		return ""
	}
	cookies := jar.Cookies(base)
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
