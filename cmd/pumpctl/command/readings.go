package command

import (
	"github.com/spf13/cobra"
)

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "Inspect glucose readings",
	Long:  "The readings command is used to inspect glucose readings stored by the service",
}

func init() {
	rootCmd.AddCommand(readingsCmd)
}
