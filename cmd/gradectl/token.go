package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/learnhub-grader.net/internal/adapter/crypto"
	"gitlab.com/learnhub-grader.net/internal/config"
)

type tokenArgs struct {
	Subject string
	TTL     time.Duration
}

var tokenFlags tokenArgs

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token signed with JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewJwtConfig()
		if cfg.Secret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		token, err := crypto.NewJWTService(cfg).IssueToken(cmd.Context(), tokenFlags.Subject, tokenFlags.TTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenFlags.Subject, "subject", "", "user id to put in the sub claim")
	tokenCmd.Flags().DurationVar(&tokenFlags.TTL, "ttl", time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
}
