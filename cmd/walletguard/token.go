package main

import (
	"fmt"

	"walletguard/internal/core/domain"
	"walletguard/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		userID string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a user or administrator",
		Long: `Mint a bearer token signed with the configured JWT secret.

Examples:
  walletguard token --user 7d4f3c1e-2a9b-4c8d-9e0f-1a2b3c4d5e6f
  walletguard token --user 0b1c2d3e-4f50-4617-8293-a4b5c6d7e8f9 --role admin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("jwt.secret is not set")
			}
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}
			r := domain.Role(role)
			if r != domain.RoleUser && r != domain.RoleAdmin {
				return fmt.Errorf("--role must be %s or %s", domain.RoleUser, domain.RoleAdmin)
			}

			tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
			token, expiry, err := tokenSvc.Generate(id, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiry.UTC().Format("2006-01-02 15:04:05Z"))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id the token is issued for")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleUser), "user or admin")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
