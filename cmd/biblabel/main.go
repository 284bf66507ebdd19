// Command biblabel generates citekeys and formatted name blocks for bibtex
// entries.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dschwilk/bibstuff/style"
	"github.com/spf13/cobra"
)

// newLogger returns a text logger on w at the level named by LOG_LEVEL, like
// "debug" or "warn+2". An unset LOG_LEVEL means info.
func newLogger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	stylePath string
}

// loadStyle reads the style file named by the --style flag, or by the
// BIBSTUFF_STYLE env when the flag is empty.
func (o *rootOptions) loadStyle() (style.Config, error) {
	path := o.stylePath
	if path == "" {
		path = os.Getenv("BIBSTUFF_STYLE")
	}
	cfg, err := style.Load(path)
	if err != nil {
		return style.Config{}, err
	}
	slog.Debug("loaded style", "path", path)
	return cfg, nil
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "biblabel",
		Short: "Generate citekeys and name blocks for bibtex entries",
		Long: `Biblabel parses the author and editor fields of bibtex entries and
generates unique citekeys, like Schwilk+Isaac-2006, using a label style.

The style is read from the --style YAML file, or BIBSTUFF_STYLE, and
BIBSTUFF_LABEL_* and BIBSTUFF_CITATION_* environment variables override it.

Examples:
  biblabel keys entries.yaml
  biblabel keys --yaml < entries.yaml
  echo 'Dylan Schwilk and Alan G. Isaac' | biblabel names
  biblabel style --style mystyle.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.stylePath, "style", "s", "", "Style file (YAML), default $BIBSTUFF_STYLE")

	cmd.AddCommand(keysCmd(opts))
	cmd.AddCommand(namesCmd(opts))
	cmd.AddCommand(styleCmd(opts))
	return cmd
}

// openInput returns the file named by args, or the command input.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, nil
}
