package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/shipline/shipline/config"
	"github.com/shipline/shipline/internal/tui"
)

var (
	initName      string
	initTestCmd   string
	initDeployCmd string
	initEmail     bool
	initSMTPHost  string
	initSMTPPort  int
	initFrom      string
	initTo        []string
	initForce     bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter shipline.yaml",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "project name")
	initCmd.Flags().StringVar(&initTestCmd, "test-command", "", "test command (empty for no tests)")
	initCmd.Flags().StringVar(&initDeployCmd, "deploy-command", "", "deploy command")
	initCmd.Flags().BoolVar(&initEmail, "email", false, "send a summary email after each run")
	initCmd.Flags().StringVar(&initSMTPHost, "smtp-host", "", "SMTP host for the summary email")
	initCmd.Flags().IntVar(&initSMTPPort, "smtp-port", 25, "SMTP port for the summary email")
	initCmd.Flags().StringVar(&initFrom, "from", "", "summary email sender address")
	initCmd.Flags().StringSliceVar(&initTo, "to", nil, "summary email recipients")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	var answers tui.Answers
	interactive := initName == "" && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		model := tui.NewWizardModel(tui.DetectTheme(themeOverride), appVersion)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return fmt.Errorf("running init wizard: %w", err)
		}
		wizard, ok := final.(tui.WizardModel)
		if !ok || wizard.Aborted() || !wizard.Done() {
			fmt.Fprintln(os.Stderr, "Init aborted.")
			return nil
		}
		answers = wizard.Answers()
	} else {
		if initName == "" {
			return fmt.Errorf("--name is required when running non-interactively")
		}
		if initDeployCmd == "" {
			return fmt.Errorf("--deploy-command is required when running non-interactively")
		}
		answers = tui.Answers{
			Name:          initName,
			TestCommand:   initTestCmd,
			DeployCommand: initDeployCmd,
			EmailEnabled:  initEmail,
			SMTPHost:      initSMTPHost,
			SMTPPort:      initSMTPPort,
			From:          initFrom,
			To:            initTo,
		}
	}

	cfg := scaffoldConfig(answers)
	if err := writeConfigFile(cfgFile, cfg); err != nil {
		return err
	}

	styles := tui.NewStyleSet(tui.DetectTheme(themeOverride))
	fmt.Printf("%s Created %s.\n", styles.SuccessTxt.Render("✔"), cfgFile)
	fmt.Printf("  Next: %s\n", styles.AccentTxt.Render("shipline run"))
	return nil
}

// scaffoldConfig turns wizard answers into a config document.
func scaffoldConfig(a tui.Answers) *config.Config {
	cfg := &config.Config{
		Project: config.ProjectConfig{
			Name:          strings.TrimSpace(a.Name),
			WorkDir:       ".",
			TestCommand:   strings.TrimSpace(a.TestCommand),
			DeployCommand: strings.TrimSpace(a.DeployCommand),
		},
	}
	if a.EmailEnabled {
		cfg.Notifications.Email = config.EmailConfig{
			Enabled:  true,
			SMTPHost: a.SMTPHost,
			SMTPPort: a.SMTPPort,
			From:     a.From,
			To:       a.To,
		}
	}
	return cfg
}

func writeConfigFile(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
