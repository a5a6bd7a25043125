package cmd

import (
	"fmt"
	"os"

	"github.com/conneroisu/fileheader/internal/config"
	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const configFileName = ".fileheader.yml"

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + configFileName + " to the current directory",
	Long: `Write a commented default configuration file to the current
directory. Flags given to this command are baked into the generated
file, so a typical project setup is:

  fileheader init --license Apache-2.0 --owner "ACME Corp"`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(configFileName); err == nil {
			return errors.NewConfigError(configFileName + " already exists (use --force to overwrite)")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewConfigError("marshal: " + err.Error())
	}

	content := "# fileheader configuration\n" +
		"# Values here are overridden by FILEHEADER_* environment\n" +
		"# variables and by command-line flags.\n" +
		string(body)

	if err := os.WriteFile(configFileName, []byte(content), 0o644); err != nil {
		return errors.NewIOError(configFileName, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)

	return nil
}
