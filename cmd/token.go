// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/studio-service/internal/types"
)

var tokenUserID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token bound to a fresh session, for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newCLIApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.specs.IsDevelopment() {
			return fmt.Errorf("token minting is only available in development")
		}

		user, err := a.storage.GetUserByID(cmd.Context(), tokenUserID)
		if err != nil {
			return fmt.Errorf("failed to load user %s: %w", tokenUserID, err)
		}

		t, err := a.auth.StartSession(cmd.Context(), user, types.ClientInfo{UserAgent: "studio-service-cli"})
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User ID")
	_ = tokenCmd.MarkFlagRequired("user-id")
}
