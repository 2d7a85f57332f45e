package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

const maxStdinBytes = 1 << 20

func newCheckCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Scores a password",
		Long:  "Scores a password. Without an argument the password is read from stdin, hidden when stdin is a terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				p, err := readPassword(cmd)
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				password = p
			}

			result, err := service.NewStrengthService().Check(model.CheckRequest{Password: password})
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), v.GetString("output"), result, "")
		},
	}
}

// readPassword reads one password from the command's input. Only the trailing
// line break is stripped; other whitespace is part of the password.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := io.ReadAll(io.LimitReader(in, maxStdinBytes))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
