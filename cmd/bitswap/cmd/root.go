package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitswap/config"
)

var (
	Version string
	Commit  string

	cfg    = config.DefaultConfig()
	vip    = viper.New()
	logger = zap.NewNop()

	configFile  string
	printConfig bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitswap",
	Short: "Show the bits of a number and swap groups of them",
	Long: `bitswap displays the raw binary representation of a 32-bit integer or an
80-bit extended precision float, and swaps two disjoint groups of bits,
closing the gap between them.

Without a subcommand it starts an interactive session.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if printConfig {
			spew.Fdump(cmd.OutOrStdout(), cfg)
			return nil
		}
		return runRepl(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&configFile, "config", "",
		fmt.Sprintf("Path to configuration file (default %s)", config.DefaultConfigFile))

	flags.String("log-level", cfg.LogLevel, "Logging level (debug, info, warn, error)")
	flags.Bool("show-ruler", cfg.ShowRuler, "Print the bit index ruler below values")
	flags.Bool("show-plan", cfg.ShowPlan, "Print the move table after each swap")
	flags.String("type", cfg.Type, "Number type: i (integer) or r (real)")

	if err := vip.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.Flags().BoolVar(&printConfig, "print-config", false, "Print the used config and exit")
}

// setup loads the config, with cli args taking priority over the config
// file, and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.ReadFile(vip, configFile); err != nil {
		return err
	}

	loaded, err := config.Load(vip)
	if err != nil {
		return err
	}
	cfg = loaded

	logger, err = newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Debug("config loaded", zap.String("file", vip.ConfigFileUsed()), zap.Any("config", cfg))
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}
