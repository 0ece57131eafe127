package main

import (
	"fmt"
	"os"

	"fntp-backend/config"
	"fntp-backend/db"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:  "fntpctl",
	Long: "Command line utilities for the FNTP assessment backend",
}

func init() {
	rootCmd.AddCommand(migrateCmd, bankCmd, tokenCmd, purgeCmd)
}

// connect opens the database from config, migrations run only on request.
func connect(migrate bool) error {
	config.InitConfig()
	return db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, migrate)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
