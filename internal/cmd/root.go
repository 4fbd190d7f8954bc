package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/showroom/internal/config"
	"github.com/Iron-Ham/showroom/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "showroom",
	Short: "Browse a car catalogue filtered by color",
	Long: `Showroom lists the cars in a catalogue and narrows them down by color.

Run 'showroom list' for plain output or 'showroom browse' for the
interactive view. The catalogue comes from the config file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/showroom/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(strings.ToUpper(config.AppName))
	// e.g., SHOWROOM_CATALOG_SELECTION for catalog.selection
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the run's logger from cfg. The returned logger is tagged
// with a fresh session ID; callers must Close it.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return nil, err
	}
	return logger.WithSession(logging.NewSessionID()), nil
}
