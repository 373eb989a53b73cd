package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipline/shipline/config"
	"github.com/shipline/shipline/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]",
	Short: "Validate a shipline.yaml without running the pipeline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}
		return validateConfigPath(path, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func validateConfigPath(path string, stdout, stderr io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	violations, err := validate.ValidateConfig(data)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(stderr, "ERROR: %s\n", v)
		}
		return fmt.Errorf("config validation failed: %d error(s)", len(violations))
	}

	cfg, err := config.ParseConfig(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Config valid: project %s\n", cfg.Project.Name)
	return nil
}
