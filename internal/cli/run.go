package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eisbaw/nemlig-cli/internal/version"
)

func Run(ctx context.Context, args []string) error {
	root := newRoot()
	root.SetArgs(args)
	root.SetContext(ctx)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func newRoot() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "nemlig",
		Short:         "nemlig.com grocery CLI",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path (default: OS config dir)")

	st := &state{}
	cmd.PersistentFlags().StringVarP(&st.username, "username", "u", "", "nemlig.com email (or NEMLIG_USERNAME)")
	cmd.PersistentFlags().StringVarP(&st.password, "password", "p", "", "password (discouraged; prefer --password-stdin or prompt)")
	cmd.PersistentFlags().BoolVar(&st.passwordStdin, "password-stdin", false, "read password from stdin (first line)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		st.configPath = cfgPath
		return st.load()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return st.save()
	}

	cmd.AddCommand(newLoginCmd(st))
	cmd.AddCommand(newLogoutCmd(st))
	cmd.AddCommand(newConfigCmd(st))
	cmd.AddCommand(newSearchCmd(st))
	cmd.AddCommand(newDetailsCmd(st))
	cmd.AddCommand(newBasketCmd(st))
	cmd.AddCommand(newAddCmd(st))
	cmd.AddCommand(newHistoryCmd(st))

	return cmd
}
