package cmd

import (
	"transmart_relay/service/api"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "api",
	Short: "Transmart relay API service.",
	Long:  `Transmart relay API service.`,
	Run: func(cmd *cobra.Command, args []string) {
		api.Run()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
