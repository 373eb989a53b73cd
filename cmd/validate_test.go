package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateConfigPath_Valid(t *testing.T) {
	path := writeConfig(t, "project:\n  name: app\n  deploy_command: make deploy\n")
	var stdout, stderr bytes.Buffer

	if err := validateConfigPath(path, &stdout, &stderr); err != nil {
		t.Fatalf("validateConfigPath() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Config valid: project app") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestValidateCmd_ViolationsGoToCommandStderr(t *testing.T) {
	path := writeConfig(t, "project:\n  name: app\nunknown_key: true\n")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)
	rootCmd.SetArgs([]string{"validate", path})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(stderr.String(), "ERROR:") {
		t.Errorf("violations should reach the command's stderr: %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "ERROR:") {
		t.Errorf("violations leaked to stdout: %q", stdout.String())
	}
}

func TestValidateConfigPath_SchemaViolations(t *testing.T) {
	path := writeConfig(t, "project:\n  name: app\nunknown_key: true\n")
	var stdout, stderr bytes.Buffer

	err := validateConfigPath(path, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(stderr.String(), "ERROR:") {
		t.Errorf("violations not reported: %q", stderr.String())
	}
}
