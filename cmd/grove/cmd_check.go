package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grove/parser"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check an HTML file for well-formedness",
		Long:  "Check parses with the strict error policy and reports every recoverable error; any error or mismatched tag fails the check.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			clean := true
			_, err = parser.Parse(input,
				parser.WithRecoveryPolicy(parser.ErrorPolicy{}),
				parser.WithErrorHandler(func(e *parser.LexError) error {
					clean = false
					fmt.Fprintf(cmd.OutOrStdout(), "offset %d: %s\n", e.Offset, e.Code)
					return nil
				}),
			)
			if err != nil {
				return err
			}
			if !clean {
				return fmt.Errorf("document is not well-formed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	return cmd
}
