package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/showroom/internal/catalog"
	"github.com/Iron-Ham/showroom/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the colors the catalogue can be filtered by",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, category := range catalog.Categories(cfg.Catalog.Collection()) {
		fmt.Fprintln(cmd.OutOrStdout(), category)
	}
	return nil
}
