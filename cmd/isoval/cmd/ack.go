package cmd

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/open-payments/isoval/message"
	"github.com/open-payments/isoval/message/admi"
)

var (
	ackRef  string
	ackName string
)

func init() {
	ackCmd.Flags().StringVar(&ackRef, "ref", "", "message identification being acknowledged (required)")
	ackCmd.Flags().StringVar(&ackName, "name", "", "message definition identifier, e.g. pacs.008.001.08")
	_ = ackCmd.MarkFlagRequired("ref")
	rootCmd.AddCommand(ackCmd)
}

var ackCmd = &cobra.Command{
	Use:   "ack",
	Short: "Build a receipt acknowledgement for a message id",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := message.Resolved(admi.AcknowledgeReceipt(ackRef, ackName))
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(b))
		return nil
	},
}
