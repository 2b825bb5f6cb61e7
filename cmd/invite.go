// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/invitations"
)

var (
	inviteTenantID string
	inviteRole     string
	inviterID      string
)

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage team invitations",
}

var createInviteCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Invite an email address to a tenant and send the invitation email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newCLIApp()
		if err != nil {
			return err
		}
		defer a.Close()

		inv, err := a.invitations.Create(cmd.Context(), invitations.CreateRequest{
			TenantID:  inviteTenantID,
			InviterID: inviterID,
			Email:     args[0],
			Role:      inviteRole,
		})
		if err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invitation created: %s (expires %s)\n", inv.ID, inv.ExpiresAt.Format(time.RFC3339))
		return nil
	},
}

var listInvitesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the invitations of a tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newCLIApp()
		if err != nil {
			return err
		}
		defer a.Close()

		invites, err := a.invitations.List(cmd.Context(), inviteTenantID)
		if err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tSTATUS\tEXPIRES_AT")
		for _, i := range invites {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.ID, i.Email, i.Role, i.Status, i.ExpiresAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inviteCmd)
	inviteCmd.AddCommand(createInviteCmd)
	inviteCmd.AddCommand(listInvitesCmd)

	inviteCmd.PersistentFlags().StringVar(&inviteTenantID, "tenant-id", "", "Tenant ID")
	_ = inviteCmd.MarkPersistentFlagRequired("tenant-id")

	createInviteCmd.Flags().StringVar(&inviteRole, "role", types.RoleMember, "Role granted on acceptance (owner, manager, member)")
	createInviteCmd.Flags().StringVar(&inviterID, "inviter-id", "", "User ID of the inviter, checked for the can_invite permission")
}
