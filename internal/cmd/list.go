package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/showroom/internal/catalog"
	"github.com/Iron-Ham/showroom/internal/config"
	"github.com/Iron-Ham/showroom/internal/tui/styles"
	"github.com/Iron-Ham/showroom/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "Print the catalogue, optionally filtered by color",
	Long: `Print the catalogue, optionally filtered by color.

The category is matched case-insensitively. Without one, the configured
catalog.selection applies; if that is empty too, every car is printed.
A category that matches nothing prints nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("output", "o", "", "output format: text, json, yaml (default from output.format)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()
	logger = logger.WithView("list")

	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = cfg.Output.Format
	}
	if !config.IsValidOutputFormat(format) {
		return fmt.Errorf("unknown output format %q (valid: text, json, yaml)", format)
	}

	selected := cfg.Catalog.Selection
	if len(args) > 0 {
		selected = args[0]
	}

	items := cfg.Catalog.Collection()
	matched := catalog.Filter(items, selected)
	logger.Info("listing catalog", "selection", selected, "items", len(items), "matched", len(matched))

	if len(matched) == 0 && selected != "" {
		if hint := catalog.Suggest(items, selected); hint != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "no cars in %q; did you mean %q?\n", selected, hint)
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return writeJSON(out, matched)
	case "yaml":
		return writeYAML(out, matched)
	default:
		return writeText(out, matched, cfg, isTerminal(out))
	}
}

func writeJSON(w io.Writer, items []catalog.Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, items []catalog.Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// writeText prints one "name, category" row per item, styled only when w is
// a terminal.
func writeText(w io.Writer, items []catalog.Item, cfg *config.Config, styled bool) error {
	theme := styles.NewTheme("mono")
	if styled {
		theme = styles.NewTheme(cfg.TUI.Theme)
	}

	for _, item := range items {
		name := util.TruncateANSI(item.Name, cfg.TUI.MaxNameWidth)
		if styled {
			name = theme.ItemName.Render(name)
		}
		if _, err := fmt.Fprintf(w, "%s, %s\n", name, theme.Category(item.Category)); err != nil {
			return err
		}
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal. Cygwin and MSYS
// ptys are pipes to x/term, so they are checked separately.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
