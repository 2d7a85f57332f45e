package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/passcheck/passcheck-go/internal/crypto"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates and scores a random password",
		Long:  fmt.Sprintf("Generates a random password and scores it. The length is clamped to [%d, %d]", crypto.MinLength, crypto.MaxLength),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := cmd.Flags().GetInt("length")
			if err != nil {
				return err
			}

			resp, err := service.NewGeneratorService(nil).Generate(model.GenerateRequest{Length: &length})
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), v.GetString("output"), resp.Result, resp.Password)
		},
	}

	cmd.Flags().IntP("length", "n", crypto.DefaultLength, "Length of the generated password")
	return cmd
}
