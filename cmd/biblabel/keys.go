package main

import (
	"fmt"

	"github.com/dschwilk/bibstuff"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type keysOptions struct {
	yaml  bool
	plain []string
	cite  bool
}

func keysCmd(root *rootOptions) *cobra.Command {
	opts := &keysOptions{}
	cmd := &cobra.Command{
		Use:   "keys [file]",
		Short: "Assign a unique citekey to each entry",
		Long: `Assign a unique citekey to each entry, in document order.

The input is a YAML list of entries:

  - type: article
    fields:
      author: Dylan Schwilk and Alan G. Isaac
      year: "2006"
      journal: American Journal of Botany

Input defaults to stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := in.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing input file: %w", cerr)
				}
			}()

			var entries []*bibstuff.Entry
			if err := yaml.NewDecoder(in).Decode(&entries); err != nil {
				return fmt.Errorf("decoding entries: %w", err)
			}
			for i, e := range entries {
				if e == nil {
					return fmt.Errorf("decoding entries: entry %d is empty", i)
				}
			}

			cfg, err := root.loadStyle()
			if err != nil {
				return err
			}
			labeler, err := bibstuff.New(cfg)
			if err != nil {
				return err
			}

			resolvers := []bibstuff.Resolver{labeler}
			if len(opts.plain) > 0 {
				resolvers = append(resolvers, bibstuff.NewRenderFieldsResolver(opts.plain...))
			}
			if err := bibstuff.ResolveAll(entries, resolvers...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.yaml {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("encoding entries: %w", err)
				}
				return enc.Close()
			}
			for _, e := range entries {
				if opts.cite {
					_, err = fmt.Fprintf(out, "%s\t%s\n", e.Key, labeler.Cite(e))
				} else {
					_, err = fmt.Fprintln(out, e.Key)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "Print the labeled entries as YAML")
	cmd.Flags().StringSliceVar(&opts.plain, "plain", nil, "Fields to render as plain text after labeling")
	cmd.Flags().BoolVar(&opts.cite, "cite", false, "Print the citation name block after each key")
	return cmd
}
