// Package cmd provides the command-line interface for fileheader with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--license, --workers, etc.) - highest priority
//	2. Individual environment variables (FILEHEADER_LICENSE, etc.)
//	3. Configuration file (.fileheader.yml) - lowest priority
//
// Environment Variables:
//
//	FILEHEADER_CONFIG_FILE: Path to custom configuration file
//	FILEHEADER_LICENSE: SPDX identifier of the license to apply
//	FILEHEADER_OWNER: Copyright holder substituted into license text
//	FILEHEADER_WORKERS: Scan worker count
//	And so on following the FILEHEADER_<OPTION> pattern
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fileheader",
	Short: "Check, add, and remove license headers in source files",
	Long: `Fileheader detects, inserts, and removes attribution and license
headers across a directory tree of source files, wrapping the header
text in the comment syntax of each file type it encounters.

Key Features:
  • Concurrent recursive scanning for missing headers
  • Idempotent header insertion and removal
  • Comment syntax selection for dozens of file types
  • Shebang, XML declaration, and interpreter pragma preservation
  • Built-in SPDX license catalog with year/owner substitution

Quick Start:
  fileheader init                         Write a default .fileheader.yml
  fileheader check --license MIT          Report files missing the header
  fileheader add --license MIT --owner X  Insert the header where missing
  fileheader remove --license MIT         Remove previously added headers
  fileheader licenses                     List the built-in license catalog`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .fileheader.yml, can also use FILEHEADER_CONFIG_FILE env var)")

	rootCmd.PersistentFlags().String("license", "", "SPDX identifier of the license to apply (see 'fileheader licenses')")
	rootCmd.PersistentFlags().String("owner", "", "copyright holder substituted into the license text")
	rootCmd.PersistentFlags().Int("year", 0, "copyright year substituted into the license text (default: current year)")
	rootCmd.PersistentFlags().String("header-file", "", "file holding custom plain header text instead of a catalog license")
	rootCmd.PersistentFlags().String("pattern", "", "substring the presence check searches for (default: derived from the header)")
	rootCmd.PersistentFlags().Int("max-lines", 0, "number of leading lines the presence check inspects")
	rootCmd.PersistentFlags().StringSlice("include", nil, "path patterns to include (default: all files)")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "path patterns to exclude")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	bindViperFlags(rootCmd.PersistentFlags(), map[string]string{
		"license":     "license",
		"owner":       "owner",
		"year":        "year",
		"header_file": "header-file",
		"pattern":     "pattern",
		"max_lines":   "max-lines",
		"include":     "include",
		"exclude":     "exclude",
		"log.level":   "log-level",
		"log.format":  "log-format",
	})
}

// bindViperFlags binds flags from fs into viper, pairing config keys
// with their flag spellings.
func bindViperFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		viper.BindPFlag(key, fs.Lookup(flag))
	}
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. FILEHEADER_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .fileheader.yml in the current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("FILEHEADER_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fileheader")
	}

	// Enable automatic environment variable binding with the
	// FILEHEADER_ prefix, e.g. FILEHEADER_LICENSE, FILEHEADER_WORKERS.
	viper.SetEnvPrefix("FILEHEADER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}
