package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smsledger/smsledger/internal/domain/parser"
)

func newParseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <message>",
		Short: "Parse a single bank message and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := parser.New().ParseBankMessage(args[0])

			if asJSON {
				return printParsedJSON(cmd, result)
			}

			amount := "-"
			if result.Amount != nil {
				amount = result.Amount.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Amount:      %s\n", amount)
			fmt.Fprintf(cmd.OutOrStdout(), "Type:        %s\n", result.Type)
			fmt.Fprintf(cmd.OutOrStdout(), "Category:    %s\n", result.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", result.Description)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printParsedJSON(cmd *cobra.Command, result parser.ParsedTransaction) error {
	var amount *float64
	if result.Amount != nil {
		v := result.Amount.InexactFloat64()
		amount = &v
	}

	out, err := json.MarshalIndent(map[string]any{
		"amount":      amount,
		"type":        result.Type,
		"category":    result.Category,
		"description": result.Description,
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
