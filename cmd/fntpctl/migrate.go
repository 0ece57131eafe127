package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connect(true); err != nil {
			return err
		}
		cmd.Println("migrations applied")
		return nil
	},
}
