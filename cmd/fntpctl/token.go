package main

import (
	"time"

	"fntp-backend/config"
	authutils "fntp-backend/lib/utils/auth-utils"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenPractitionerID string
	tokenName           string
	tokenTTL            time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a practitioner JWT",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config.InitConfig()
		if tokenPractitionerID == "" {
			tokenPractitionerID = uuid.NewString()
		}
		ttl := tokenTTL
		if ttl == 0 {
			ttl = time.Duration(config.Conf.Auth.JWTExpireInSec) * time.Second
		}
		token, err := authutils.SignToken(config.Conf.Auth.JWTSecret, tokenPractitionerID, tokenName, ttl)
		if err != nil {
			return err
		}
		cmd.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenPractitionerID, "id", "", "practitioner id, generated when empty")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "practitioner name")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime, JWT_EXPIRE_IN_SEC when empty")
}
