package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/t3init/internal/build"
	"github.com/tacogips/t3init/internal/config"
	"github.com/tacogips/t3init/internal/debug"
)

// Build information, overridable from main via ldflags.
var (
	Version   = build.Current().Version
	GitCommit = build.Current().Commit
	BuildDate = build.Current().Date
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
)

// loadedConfig is populated by the root PersistentPreRunE.
var loadedConfig = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "t3init",
	Short: "Scaffold the API layer of a Next.js starter app",
	Long: `t3init copies pre-written template files into a project and registers
the packages they need in package.json.

Which templates are copied depends on the feature selection:
  --app-router         use the app router instead of the pages router
  --auth <provider>    none, next-auth or lucia
  --db <orm>           none, prisma or drizzle

Use "t3init plan" to preview and "t3init scaffold <project-dir>" to apply.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	debug.Sync()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupGlobals loads configuration and configures debug output.
// Precedence: flags > environment > config file > defaults.
func setupGlobals(cmd *cobra.Command, args []string) error {
	debug.SetDebug(globalDebug)
	debug.SetNoColor(globalNoColor)

	cfg, err := loadConfig(globalConfigPath)
	if err != nil {
		return err
	}
	loadedConfig = cfg

	if !cmd.Flags().Changed(FlagNoColor) {
		globalNoColor = cfg.Output.NoColor
	}
	if !cmd.Flags().Changed(FlagQuiet) {
		globalQuiet = cfg.Output.Quiet
	}
	debug.SetNoColor(globalNoColor)
	debug.DebugJSON("[cli] Config", cfg)
	return nil
}

// loadConfig reads the config file (or defaults), then overlays T3INIT_*
// environment variables. An explicit path must exist; without one the
// default locations are tried.
func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()

	if path == "" {
		path = config.FindConfigFile()
	} else {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	cfg := config.DefaultConfig()
	if path != "" {
		debug.DebugValue("[cli] Config file", path)
		fileCfg, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
