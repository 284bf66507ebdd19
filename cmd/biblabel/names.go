package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dschwilk/bibstuff/nameformat"
	"github.com/dschwilk/bibstuff/namelist"
	"github.com/spf13/cobra"
)

type namesOptions struct {
	template  string
	initials  string
	lastNames bool
}

func namesCmd(root *rootOptions) *cobra.Command {
	opts := &namesOptions{}
	cmd := &cobra.Command{
		Use:   "names [file]",
		Short: "Format name lists, one raw names field per line",
		Long: `Format name lists with the citation style, one raw names field per
line, like "Dylan Schwilk and Alan G. Isaac".

Input defaults to stdin.

Examples:
  echo 'Schwilk, Dylan and Isaac, Alan' | biblabel names
  echo 'Schwilk, Dylan and Isaac, Alan' | biblabel names --template 'f{.}. |l' --initials f
  biblabel names --last-names authors.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := root.loadStyle()
			if err != nil {
				return err
			}
			cite := cfg.Citation
			if cmd.Flags().Changed("initials") {
				cite.Initials = opts.initials
			}
			if opts.template != "" {
				cite.NameFirst = opts.template
				cite.NameOther = opts.template
			}
			f, err := cite.Compile()
			if err != nil {
				return err
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := in.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing input file: %w", cerr)
				}
			}()

			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(in)
			for line := 1; sc.Scan(); line++ {
				names, perr := namelist.Parse(sc.Text())
				if perr != nil {
					slog.Warn("malformed names", "line", line, "error", perr)
				}
				if _, err := fmt.Fprintln(out, format(f, names, opts.lastNames)); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading names: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Name template for every person, overrides the style")
	cmd.Flags().StringVar(&opts.initials, "initials", "", "Parts rendered as initials, any of f, v, l and j")
	cmd.Flags().BoolVar(&opts.lastNames, "last-names", false, "Print only the last names, separated by semicolons")
	return cmd
}

func format(f *nameformat.ListFormatter, names namelist.NameList, lastNames bool) string {
	if lastNames {
		return strings.Join(names.LastNames(), "; ")
	}
	return f.Format(names)
}
