// Package rest implements the repository against the task REST backend.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"taskflow/config"
	"taskflow/internal/entities"
	"taskflow/internal/session"
	"taskflow/internal/wire"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxBodySize     = 4 << 20
	requestIDHeader = "X-Request-ID"
)

// Client talks to the backend with the session credential attached.
type Client struct {
	log      *zap.SugaredLogger
	base     *url.URL
	http     *http.Client
	jar      *cookiejar.Jar
	sessions session.Store

	mu    sync.RWMutex
	token string
}

// New creates a REST client for cfg.API.BaseURL.
func New(log *zap.SugaredLogger, cfg *config.Config, sessions session.Store) (*Client, error) {
	base, err := cfg.API.URL()
	if err != nil {
		return nil, err
	}
	jar, err := session.NewJar(base, "")
	if err != nil {
		return nil, err
	}

	return &Client{
		log:      log.Named("repo.rest"),
		base:     base,
		http:     &http.Client{Jar: jar},
		jar:      jar,
		sessions: sessions,
	}, nil
}

// OnStart restores the persisted session.
func (c *Client) OnStart(_ context.Context) error {
	s, err := c.sessions.Load()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if s.Cookies != "" {
		restored, err := session.NewJar(c.base, s.Cookies)
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		c.jar.SetCookies(c.base, restored.Cookies(c.base))
	}
	c.setToken(s.Token)

	c.log.Debugw("rest client ready", "base_url", c.base.String(), "authenticated", s.Authenticated())
	return nil
}

// OnStop releases idle connections.
func (c *Client) OnStop(_ context.Context) error {
	c.http.CloseIdleConnections()
	return nil
}

// Session returns the credential currently attached to requests.
func (c *Client) Session() entities.Session {
	token := c.currentToken()
	return entities.Session{
		Token:   token,
		Cookies: session.CookieHeader(c.jar, c.base),
		UserID:  session.UserIDFromToken(token),
	}
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) forget() {
	c.setToken("")
	expired := c.jar.Cookies(c.base)
	for _, ck := range expired {
		ck.Path = "/"
		ck.MaxAge = -1
	}
	c.jar.SetCookies(c.base, expired)
}

// do performs one request and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("api request failed",
			"method", method,
			"path", path,
			"request_id", reqID,
			"duration", time.Since(start),
			"err", err,
		)
		return nil, &entities.APIError{Err: fmt.Errorf("%w: %v", entities.ErrTransport, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &entities.APIError{Err: fmt.Errorf("%w: read body: %v", entities.ErrTransport, err)}
	}

	c.log.Debugw("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &entities.APIError{Status: resp.StatusCode, Message: wire.ErrorMessage(raw)}
	}
	if len(bytes.TrimSpace(raw)) > 0 && !isJSON(resp.Header.Get("Content-Type")) {
		return nil, fmt.Errorf("%w: invalid response format from server", entities.ErrDecode)
	}
	return raw, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
