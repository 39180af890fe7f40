package cmd

import (
	"github.com/spf13/cobra"

	"github.com/open-payments/isoval/message"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the registered message discriminators",
	Run: func(cmd *cobra.Command, args []string) {
		for _, tag := range message.Tags() {
			cmd.Println(tag)
		}
	},
}
