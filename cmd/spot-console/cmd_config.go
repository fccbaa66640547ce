package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd prints the effective console configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective console configuration",
	Long: `Prints the configuration the console commands run with, merged from
built-in defaults and the config file when it exists.`,
	RunE: runConfig,
}

// configInitCmd writes the config file with the current defaults
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Writes the current effective configuration to the config file path,
creating the directory when needed. An existing file is left untouched.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(fileCfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	fmt.Printf("# %s\n", cfgPath)
	fmt.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := fileCfg.Save(cfgPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", cfgPath)
	return nil
}
