package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"grove/parser"
)

func newParseCmd() *cobra.Command {
	var policyName string
	var tree bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an HTML file and print it back",
		Long:  "Parse reads HTML from a file (or stdin) and prints the serialized document, or with --tree an indented outline of its nodes.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			policy, err := policyByName(policyName)
			if err != nil {
				return err
			}
			doc, err := parser.Parse(input, parser.WithRecoveryPolicy(policy))
			if err != nil {
				return err
			}
			if tree {
				fmt.Print(doc.String())
				return nil
			}
			fmt.Println(doc.Serialize())
			return nil
		},
	}
	cmd.Flags().StringVar(&policyName, "policy", "close", "recovery policy for mismatched end tags: error, void or close")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the node outline instead of HTML")
	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func policyByName(name string) (parser.RecoveryPolicy, error) {
	switch name {
	case "error":
		return parser.ErrorPolicy{}, nil
	case "void":
		return parser.VoidPolicy{}, nil
	case "close":
		return parser.ClosePolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy: %s", name)
	}
}
