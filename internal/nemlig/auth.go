package nemlig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTokenLifetime is assumed when the token endpoint does not report
// expires_in and the token carries no usable expiry claim.
const DefaultTokenLifetime = 5 * time.Minute

// Session is the auth bundle produced by Login. Cookies stay in the client's
// jar; ExpiresAt is zero when the token endpoint did not report a lifetime.
type Session struct {
	AccessToken string
	XSRFToken   string
	ExpiresAt   time.Time
}

type antiForgeryResponse struct {
	Value string `json:"Value"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (t tokenResponse) expiresAt(now time.Time) time.Time {
	if t.ExpiresIn <= 0 {
		return time.Time{}
	}
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

type loginPayload struct {
	Username                 string `json:"Username"`
	Password                 string `json:"Password"`
	CheckForExistingProducts bool   `json:"CheckForExistingProducts"`
	DoMerge                  bool   `json:"DoMerge"`
	AppInstalled             bool   `json:"AppInstalled"`
	SaveExistingBasket       bool   `json:"SaveExistingBasket"`
}

// Login runs the vendor's three-step login flow: fetch the anti-forgery
// token, fetch a bearer token, then POST the credentials. Both tokens are
// rotated server-side on success, so they are fetched again afterwards.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	fmt.Fprintln(c.log, "step 1/3: fetching anti-forgery token")
	xsrf, err := c.fetchAntiForgery(ctx)
	if err != nil {
		return Session{}, err
	}

	fmt.Fprintln(c.log, "step 2/3: fetching bearer token")
	tok, err := c.fetchToken(ctx)
	if err != nil {
		return Session{}, err
	}
	c.xsrfToken = xsrf
	c.accessToken = tok.AccessToken

	fmt.Fprintln(c.log, "step 3/3: logging in")
	if err := c.postLogin(ctx, username, password); err != nil {
		return Session{}, err
	}

	// The server rotates both tokens once the session is authenticated.
	now := time.Now()
	tok, err = c.fetchToken(ctx)
	if err != nil {
		return Session{}, err
	}
	c.accessToken = tok.AccessToken

	xsrf, err = c.fetchAntiForgery(ctx)
	if err != nil {
		return Session{}, err
	}
	c.xsrfToken = xsrf

	fmt.Fprintln(c.log, "login ok")
	return Session{
		AccessToken: tok.AccessToken,
		XSRFToken:   xsrf,
		ExpiresAt:   tok.expiresAt(now),
	}, nil
}

func (c *Client) fetchAntiForgery(ctx context.Context) (string, error) {
	var out antiForgeryResponse
	if err := c.getJSON(ctx, c.baseURL, "webapi/AntiForgery", nil, &out); err != nil {
		return "", err
	}
	if out.Value == "" {
		return "", fmt.Errorf("webapi/AntiForgery: missing Value in response")
	}
	return out.Value, nil
}

func (c *Client) fetchToken(ctx context.Context) (tokenResponse, error) {
	var out tokenResponse
	if err := c.getJSON(ctx, c.baseURL, "webapi/Token", nil, &out); err != nil {
		return tokenResponse{}, err
	}
	if out.AccessToken == "" {
		return tokenResponse{}, fmt.Errorf("webapi/Token: missing access_token in response")
	}
	return out, nil
}

func (c *Client) postLogin(ctx context.Context, username, password string) error {
	body, err := json.Marshal(loginPayload{
		Username:                 username,
		Password:                 password,
		CheckForExistingProducts: true,
		DoMerge:                  true,
	})
	if err != nil {
		return err
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: "webapi/login"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setCommonHeaders(req)
	req.Header.Set("Referer", c.baseURL.String()+"login?returnUrl=%2F")

	var result map[string]json.RawMessage
	if err := c.do(req, &result); err != nil {
		return err
	}

	// A successful login is signalled by the RedirectUrl field; anything
	// else is a rejection even with a 200 status.
	if _, ok := result["RedirectUrl"]; !ok {
		raw, _ := json.Marshal(result)
		return fmt.Errorf("login rejected: %s", redactSensitive(raw))
	}
	return nil
}
