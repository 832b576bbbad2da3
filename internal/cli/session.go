package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eisbaw/nemlig-cli/internal/config"
	"github.com/eisbaw/nemlig-cli/internal/nemlig"
)

func newClient(cmd *cobra.Command, st *state) (*nemlig.Client, error) {
	return nemlig.New(nemlig.Options{
		BaseURL:       st.cfg.BaseURL,
		SearchBaseURL: st.cfg.SearchBaseURL,
		UserAgent:     st.cfg.HTTPUserAgent,
		LogWriter:     cmd.ErrOrStderr(),
	})
}

// newAuthedClient returns a client holding a live token bundle, reusing the
// cached session when it has not expired and logging in otherwise.
func newAuthedClient(cmd *cobra.Command, st *state) (*nemlig.Client, error) {
	c, err := newClient(cmd, st)
	if err != nil {
		return nil, err
	}

	if sess := st.cfg.Session; !sess.LikelyExpired(time.Now()) {
		c.RestoreSession(sess.AccessToken, sess.XSRFToken, sess.CookiesByHost[c.Host()])
		return c, nil
	}

	if err := loginAndCache(cmd, st, c); err != nil {
		return nil, err
	}
	return c, nil
}

func loginAndCache(cmd *cobra.Command, st *state, c *nemlig.Client) error {
	username, err := resolveUsername(st)
	if err != nil {
		return err
	}
	password, err := resolvePassword(cmd, st)
	if err != nil {
		return err
	}

	sess, err := c.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	if sess.ExpiresAt.IsZero() {
		if exp, ok := config.AccessTokenExpiresAt(sess.AccessToken); ok {
			sess.ExpiresAt = exp
		} else {
			sess.ExpiresAt = time.Now().Add(nemlig.DefaultTokenLifetime)
		}
	}

	st.cfg.Username = username
	st.cfg.Session = &config.Session{
		XSRFToken:   sess.XSRFToken,
		AccessToken: sess.AccessToken,
		ExpiresAt:   sess.ExpiresAt,
		CookiesByHost: map[string]string{
			c.Host(): c.CookieHeader(),
		},
	}
	st.markDirty()
	return nil
}

func resolveUsername(st *state) (string, error) {
	if st.username != "" {
		return st.username, nil
	}
	if v := st.envUsername(); v != "" {
		return v, nil
	}
	if st.cfg.Username != "" {
		return st.cfg.Username, nil
	}
	return "", errors.New("missing username (use --username or NEMLIG_USERNAME)")
}

func resolvePassword(cmd *cobra.Command, st *state) (string, error) {
	if st.password != "" {
		return st.password, nil
	}
	if st.passwordStdin {
		b, err := bufio.NewReader(cmd.InOrStdin()).ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		p := strings.TrimSpace(string(b))
		if p == "" {
			return "", errors.New("empty password on stdin")
		}
		return p, nil
	}
	if v := st.envPassword(); v != "" {
		return v, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		p := strings.TrimSpace(string(b))
		if p == "" {
			return "", errors.New("empty password")
		}
		return p, nil
	}
	return "", errors.New("missing password (use --password-stdin or NEMLIG_PASSWORD)")
}

func newLoginCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login and cache the session bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Always run the full flow; a stale cached bundle must not
			// short-circuit an explicit login.
			st.cfg.Session = nil
			c, err := newClient(cmd, st)
			if err != nil {
				return err
			}
			if err := loginAndCache(cmd, st, c); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newLogoutCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			st.cfg.Session = nil
			st.markDirty()
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
		},
	}
}
