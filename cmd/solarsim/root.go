package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signalsfoundry/solarsim/core"
)

var rootCmd = &cobra.Command{
	Use:   "solarsim",
	Short: "Solar system body catalog and state derivation",
	Long: "Solarsim serves a solar system body catalog and derives barycentric\n" +
		"positions and velocities from canonical orbital elements.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .solarsim.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog JSON file overriding the built-in bodies")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".solarsim")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SOLARSIM")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadCatalog returns the catalog named by --catalog (or the config file),
// falling back to the built-in solar system bodies.
func loadCatalog(cmd *cobra.Command) (*core.Catalog, string, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = viper.GetString("catalog")
	}
	if path == "" {
		cat, err := core.DefaultCatalog()
		return cat, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	cat, err := core.LoadCatalogJSON(f)
	if err != nil {
		return nil, "", fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, path, nil
}
