package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-stagehand/stagehand/pkg/style"
)

func keysCmd() *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List the animation-keys a cue sheet defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := style.LoadSheet(args[0])
			if err != nil {
				return err
			}
			for _, key := range sheet.Keys() {
				if counts {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", key, len(sheet[key]))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&counts, "counts", "c", false, "Show the number of records in each bundle")

	return cmd
}
