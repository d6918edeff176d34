package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smsledger/smsledger/internal/domain/ingest"
	"github.com/smsledger/smsledger/internal/domain/parser"
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Parse the sample inbox and print the detected transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := parser.New()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSENDER\tAMOUNT\tTYPE\tCATEGORY\tDESCRIPTION")

			for _, sample := range ingest.SampleInbox() {
				result := p.ParseBankMessage(sample.Message)

				amount := "-"
				if result.Amount != nil {
					amount = result.Amount.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					sample.ID, sample.Sender, amount, result.Type, result.Category, result.Description)
			}

			return w.Flush()
		},
	}
}
