package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
project:
  name: payments-api
  workdir: .
  test_command: go test ./...
  deploy_command: ./scripts/deploy.sh
  env:
    ENVIRONMENT: staging
notifications:
  email:
    enabled: true
    smtp_host: smtp.example.com
    smtp_port: 587
    from: ci@example.com
    to:
      - team@example.com
log:
  verbose: true
`

func TestParseConfig_Valid(t *testing.T) {
	cfg, err := ParseConfig([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Project.Name != "payments-api" {
		t.Errorf("Name = %q", cfg.Project.Name)
	}
	if cfg.Project.TestCommand != "go test ./..." {
		t.Errorf("TestCommand = %q", cfg.Project.TestCommand)
	}
	if !cfg.SendEmailSummary() {
		t.Error("SendEmailSummary() should be true")
	}
	if cfg.Notifications.Email.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d", cfg.Notifications.Email.SMTPPort)
	}
	if cfg.Project.Env["ENVIRONMENT"] != "staging" {
		t.Errorf("Env = %v", cfg.Project.Env)
	}
}

func TestParseConfig_EmailDisabledByDefault(t *testing.T) {
	cfg, err := ParseConfig([]byte("project:\n  name: app\n  deploy_command: make deploy\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.SendEmailSummary() {
		t.Error("email should default to disabled")
	}
}

func TestParseConfig_MissingRequired(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"no name", "project:\n  deploy_command: make deploy\n", "project.name"},
		{"no deploy command", "project:\n  name: app\n", "project.deploy_command"},
		{
			"email enabled without host",
			"project:\n  name: app\n  deploy_command: make deploy\nnotifications:\n  email:\n    enabled: true\n    from: a@b.c\n    to: [d@e.f]\n",
			"smtp_host",
		},
		{
			"email enabled without recipients",
			"project:\n  name: app\n  deploy_command: make deploy\nnotifications:\n  email:\n    enabled: true\n    smtp_host: smtp.example.com\n    from: a@b.c\n",
			"notifications.email.to",
		},
	}
	for _, c := range cases {
		_, err := ParseConfig([]byte(c.yaml))
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q should mention %q", c.name, err, c.want)
		}
	}
}

func TestParseConfig_BadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("project: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shipline.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Project.Name != "payments-api" {
		t.Errorf("Name = %q", cfg.Project.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
