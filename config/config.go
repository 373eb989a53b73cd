// Package config holds configuration types for shipline.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level shipline.yaml configuration.
type Config struct {
	Project       ProjectConfig       `yaml:"project"`
	Notifications NotificationsConfig `yaml:"notifications,omitempty"`
	Log           LogConfig           `yaml:"log,omitempty"`
}

// ProjectConfig describes the project the pipeline operates on.
type ProjectConfig struct {
	Name          string            `yaml:"name"`
	WorkDir       string            `yaml:"workdir,omitempty"`
	TestCommand   string            `yaml:"test_command,omitempty"` // empty means the project has no tests
	DeployCommand string            `yaml:"deploy_command"`
	Env           map[string]string `yaml:"env,omitempty"`
}

// NotificationsConfig groups post-run notification settings.
type NotificationsConfig struct {
	Email EmailConfig `yaml:"email,omitempty"`
}

// EmailConfig configures the summary email sender.
type EmailConfig struct {
	Enabled  bool     `yaml:"enabled"`
	SMTPHost string   `yaml:"smtp_host,omitempty"`
	SMTPPort int      `yaml:"smtp_port,omitempty"` // default 25
	From     string   `yaml:"from,omitempty"`
	To       []string `yaml:"to,omitempty"`
	Username string   `yaml:"username,omitempty"`
	// Password is read from SHIPLINE_SMTP_PASSWORD when set, so the
	// credential can stay out of the config file.
	Password string `yaml:"password,omitempty"`
}

// LogConfig configures pipeline logging.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// SendEmailSummary reports whether a summary email should go out after a run.
// It satisfies the pipeline's configuration capability.
func (c *Config) SendEmailSummary() bool {
	return c.Notifications.Email.Enabled
}

// ParseConfig parses raw YAML bytes into a Config and validates required fields.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing shipline config: %w", err)
	}

	if cfg.Project.Name == "" {
		return nil, fmt.Errorf("shipline config: project.name is required")
	}
	if cfg.Project.DeployCommand == "" {
		return nil, fmt.Errorf("shipline config: project.deploy_command is required")
	}
	if cfg.Notifications.Email.Enabled {
		email := cfg.Notifications.Email
		if email.SMTPHost == "" {
			return nil, fmt.Errorf("shipline config: notifications.email.smtp_host is required when email is enabled")
		}
		if email.From == "" {
			return nil, fmt.Errorf("shipline config: notifications.email.from is required when email is enabled")
		}
		if len(email.To) == 0 {
			return nil, fmt.Errorf("shipline config: notifications.email.to is required when email is enabled")
		}
	}

	return &cfg, nil
}

// Load reads and parses a shipline.yaml file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shipline config %s: %w", path, err)
	}
	return ParseConfig(data)
}
