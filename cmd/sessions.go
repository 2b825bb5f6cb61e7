// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var sessionsUserID string

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect and revoke user sessions",
}

var listSessionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active sessions of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newCLIApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sessions, err := a.auth.ListSessions(cmd.Context(), sessionsUserID)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tIP_ADDRESS\tUSER_AGENT\tLAST_ACTIVE_AT")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.IPAddress, s.UserAgent, s.LastActiveAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var revokeAllSessionsCmd = &cobra.Command{
	Use:   "revoke-all",
	Short: "Invalidate every session of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newCLIApp()
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.storage.InvalidateUserSessions(cmd.Context(), sessionsUserID)
		if err != nil {
			return fmt.Errorf("failed to revoke sessions: %w", err)
		}

		a.logger.Security().AuthnTokenRevokedAll(sessionsUserID, n)
		fmt.Fprintf(cmd.OutOrStdout(), "Revoked %d session(s) for user %s\n", n, sessionsUserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(listSessionsCmd)
	sessionsCmd.AddCommand(revokeAllSessionsCmd)

	sessionsCmd.PersistentFlags().StringVar(&sessionsUserID, "user-id", "", "User ID")
	_ = sessionsCmd.MarkPersistentFlagRequired("user-id")
}
