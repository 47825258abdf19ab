package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stockr/stockr/internal/api"
	"github.com/stockr/stockr/internal/config"
	"github.com/stockr/stockr/internal/config/data"
	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/telemetry"
	"github.com/stockr/stockr/internal/view"
)

const appName = config.AppName

var (
	stockrFlags *data.Flags
	rootCmd     = &cobra.Command{
		Use:   appName,
		Short: "A terminal dashboard for inventory management",
		Long:  `stockr browses and edits the products, categories and sales of an inventory backend, and charts its analytics.`,
		RunE:  run,
	}
)

func init() {
	stockrFlags = config.NewFlags()
	initStockrFlags()
	rootCmd.AddCommand(versionCmd(), mockCmd(), exportCmd())
}

func initStockrFlags() {
	rootCmd.PersistentFlags().StringVarP(stockrFlags.BaseURL, "base-url", "u", config.DefaultBaseURL, "Inventory backend base URL")
	rootCmd.PersistentFlags().StringVarP(stockrFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(stockrFlags.LogFile, "logFile", "", "Log file path")
	rootCmd.Flags().IntVar(stockrFlags.PageSize, "page-size", config.DefaultPageSize, "Rows per table page")
	rootCmd.Flags().StringVar(stockrFlags.Debounce, "debounce", config.DefaultDebounce.String(), "Filter debounce window")
	rootCmd.Flags().Float32VarP(stockrFlags.RefreshRate, "refresh", "r", config.DefaultRefreshRate, "Refresh rate in seconds, 0 disables polling")
	rootCmd.Flags().StringVar(stockrFlags.Theme, "theme", string(config.DefaultTheme), "Color theme (light, dark, system)")
	rootCmd.Flags().StringVarP(stockrFlags.Command, "command", "c", config.DefaultView, "Startup view")
}

// unsetFlags drops flags the user did not pass so they don't mask the
// config file or the environment.
func unsetFlags(cmd *cobra.Command, f *data.Flags) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if !changed("base-url") {
		f.BaseURL = nil
	}
	if !changed("logLevel") {
		f.LogLevel = nil
	}
	if !changed("page-size") {
		f.PageSize = nil
	}
	if !changed("debounce") {
		f.Debounce = nil
	}
	if !changed("refresh") {
		f.RefreshRate = nil
	}
	if !changed("theme") {
		f.Theme = nil
	}
	if !changed("command") {
		f.Command = nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the configuration from defaults, file, env and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.InitLocs(); err != nil {
		return nil, fmt.Errorf("failed to initialize locations: %w", err)
	}
	if err := config.InitLogLoc(); err != nil {
		return nil, fmt.Errorf("failed to initialize log location: %w", err)
	}

	env, err := config.LoadEnv(".env", config.AppEnvFile)
	if err != nil {
		return nil, err
	}
	cfg := config.NewConfig()
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	unsetFlags(cmd, stockrFlags)
	if err := cfg.Refine(stockrFlags, env); err != nil {
		return nil, fmt.Errorf("failed to refine configuration: %w", err)
	}

	return cfg, nil
}

func logFile() string {
	if config.IsStringSet(stockrFlags.LogFile) {
		return *stockrFlags.LogFile
	}
	return config.AppLogFile
}

func newFactory(cfg *config.Config) (*dao.APIFactory, error) {
	baseURL, err := cfg.Stockr.GetBaseURL()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Stockr.GetAPITimeout()
	if err != nil {
		return nil, err
	}
	client, err := api.NewClient(api.ClientConfig{
		BaseURL: baseURL,
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	return dao.NewFactory(client), nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closer, err := telemetry.InitLogger(cfg.Stockr.Logger.Level, logFile(), false)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := cfg.Save(config.AppConfigFile, false); err != nil {
		slog.Warn("failed to save configuration", "error", err)
	}

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}
	slog.Info("starting", "version", version, "baseURL", factory.Client().BaseURL())

	app := view.NewApp(cfg, factory, version)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run()
}
