package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConfigCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show/edit config",
	}
	cmd.AddCommand(newConfigShowCmd(st))
	cmd.AddCommand(newConfigSetCmd(st))
	return cmd
}

func newConfigShowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print current config (redacts tokens)",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base_url=%s\n", st.cfg.BaseURL)
			fmt.Fprintf(out, "search_base_url=%s\n", st.cfg.SearchBaseURL)
			if st.cfg.Username != "" {
				fmt.Fprintf(out, "username=%s\n", st.cfg.Username)
			}
			if st.cfg.HTTPUserAgent != "" {
				fmt.Fprintf(out, "http_user_agent=%s\n", st.cfg.HTTPUserAgent)
			}
			if sess := st.cfg.Session; sess.Valid() {
				fmt.Fprintf(out, "session=*** (expires %s)\n", sess.ExpiresAt.Format("2006-01-02 15:04:05"))
			}
		},
	}
}

func newConfigSetCmd(st *state) *cobra.Command {
	var baseURL string
	var searchBaseURL string
	var username string
	var userAgent string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update base URLs / stored username",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			if strings.TrimSpace(baseURL) != "" {
				st.cfg.BaseURL = strings.TrimSpace(baseURL)
				changed = true
			}
			if strings.TrimSpace(searchBaseURL) != "" {
				st.cfg.SearchBaseURL = strings.TrimSpace(searchBaseURL)
				changed = true
			}
			if strings.TrimSpace(username) != "" {
				st.cfg.Username = strings.TrimSpace(username)
				changed = true
			}
			if cmd.Flags().Changed("user-agent") {
				st.cfg.HTTPUserAgent = userAgent
				changed = true
			}

			if !changed {
				return errors.New("nothing to set (use --base-url, --search-base-url, --username, or --user-agent)")
			}
			st.markDirty()
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "site base URL (e.g. https://www.nemlig.com)")
	cmd.Flags().StringVar(&searchBaseURL, "search-base-url", "", "search gateway base URL")
	cmd.Flags().StringVar(&username, "username", "", "store account email in config")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "override HTTP User-Agent")
	return cmd
}
