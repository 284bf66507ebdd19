package main

import (
	"github.com/dschwilk/bibstuff/style"
	"github.com/spf13/cobra"
)

func styleCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the effective style as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadStyle()
			if err != nil {
				return err
			}
			data, err := style.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
