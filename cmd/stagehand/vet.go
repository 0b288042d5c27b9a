package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-stagehand/stagehand/cmd/stagehand/internal/config"
	"github.com/go-stagehand/stagehand/pkg/style"
)

func vetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet [files...]",
		Short: "Validate cue sheet files",
		Long: `Parse and validate cue sheet YAML files.

With file arguments, each named file is checked. With no arguments, the
sheets configured in stagehand.yaml are checked.

Vet reports structural problems: malformed YAML, unknown color names,
blank animation-keys, and empty style bundles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				root, err := config.FindProjectRoot()
				if err != nil {
					return err
				}
				resolved, err := config.Resolve(root)
				if err != nil {
					return err
				}
				files, err = resolved.SheetFiles()
				if err != nil {
					return err
				}
				if len(files) == 0 {
					return fmt.Errorf("no cue sheets found: pass files or configure sheets in stagehand.yaml")
				}
			}

			failures := 0
			for _, file := range files {
				sheet, err := style.LoadSheet(file)
				if err != nil {
					failures++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d keys)\n", file, len(sheet))
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d sheets failed", failures, len(files))
			}
			return nil
		},
	}
}
