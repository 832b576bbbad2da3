package nemlig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/136.0.0.0 Safari/537.36"

// Client is a nemlig.com web API client.
type Client struct {
	baseURL   *url.URL
	searchURL *url.URL
	http      *http.Client
	jar       *cookiejar.Jar
	userAgent string
	log       io.Writer

	xsrfToken   string
	accessToken string
}

// Options configures a new client.
type Options struct {
	BaseURL       string
	SearchBaseURL string
	UserAgent     string
	// LogWriter receives progress messages (login steps etc). Defaults to
	// io.Discard.
	LogWriter     io.Writer
}

// New creates a nemlig client with a fresh cookie jar.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base URL not set")
	}
	if opts.SearchBaseURL == "" {
		return nil, errors.New("search base URL not set")
	}

	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	search, err := parseBaseURL(opts.SearchBaseURL)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	logw := opts.LogWriter
	if logw == nil {
		logw = io.Discard
	}

	return &Client{
		baseURL:   base,
		searchURL: search,
		http: &http.Client{
			Timeout: 20 * time.Second,
			Jar:     jar,
		},
		jar:       jar,
		userAgent: ua,
		log:       logw,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// Host returns the hostname cookies are keyed under.
func (c *Client) Host() string {
	return strings.ToLower(c.baseURL.Hostname())
}

// RestoreSession installs a previously cached token bundle.
func (c *Client) RestoreSession(accessToken, xsrfToken, cookieHeader string) {
	c.accessToken = accessToken
	c.xsrfToken = xsrfToken
	if cookieHeader == "" {
		return
	}
	var cookies []*http.Cookie
	for _, part := range strings.Split(cookieHeader, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || k == "" {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: strings.TrimSpace(k), Value: strings.TrimSpace(v)})
	}
	c.jar.SetCookies(c.baseURL, cookies)
}

// CookieHeader serializes the jar's cookies for the base URL so the session
// can be cached between invocations.
func (c *Client) CookieHeader() string {
	cookies := c.jar.Cookies(c.baseURL)
	parts := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		parts = append(parts, ck.Name+"="+ck.Value)
	}
	return strings.Join(parts, "; ")
}

// setCommonHeaders mirrors the headers the web frontend sends. A fresh
// correlation ID is generated per request.
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Device-Size", "desktop")
	req.Header.Set("Platform", "web")
	req.Header.Set("Version", "11.201.0")
	req.Header.Set("Referer", c.baseURL.String())
	req.Header.Set("X-Correlation-Id", uuid.NewString())

	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	if c.xsrfToken != "" {
		req.Header.Set("X-XSRF-TOKEN", c.xsrfToken)
	}
}

func (c *Client) getJSON(ctx context.Context, base *url.URL, path string, query url.Values, out any) error {
	u := base.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	c.setCommonHeaders(req)

	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setCommonHeaders(req)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: res.StatusCode,
			Body:       body,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode JSON: %w", req.URL.Path, err)
	}
	return nil
}
