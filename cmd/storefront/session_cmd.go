package main

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
)

var (
	loginID       string
	loginUsername string
	loginRole     string
)

var loginCmd = &cobra.Command{
	Use:     "login",
	Short:   "Sign in as the given identity and persist it",
	Example: `  storefront login --id 42 --username alice --role admin`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		identity := domain.Identity{
			ID:       loginID,
			Username: loginUsername,
			Role:     domain.ParseRole(loginRole),
		}

		if err := a.session.Login(ctx, identity); err != nil {
			return err
		}

		return printIdentity(cmd, a.identities.Identity(), a.counts.Count())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the persisted identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		if err := a.session.Logout(ctx); err != nil {
			return err
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return err
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity and cart count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printIdentity(cmd, a.identities.Identity(), a.counts.Count())
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginID, "id", "", "User id")
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Display name")
	loginCmd.Flags().StringVar(&loginRole, "role", string(domain.RoleUser), "USER, ADMIN or MODERATOR")
	_ = loginCmd.MarkFlagRequired("id")
}
