package runtime

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/shipline/shipline/config"
	"github.com/shipline/shipline/pipeline"
)

// ExecProject adapts a checked-out project directory to the pipeline's
// Project capability by running configured shell commands. A command's exit
// status is the only thing the pipeline sees: exit 0 maps to the success
// token, anything else to a failure token.
type ExecProject struct {
	dir       string
	testCmd   string
	deployCmd string
	env       map[string]string
	logger    Logger
}

// NewExecProject creates an ExecProject from the project section of a config.
func NewExecProject(cfg *config.Config, logger Logger) *ExecProject {
	return &ExecProject{
		dir:       cfg.Project.WorkDir,
		testCmd:   cfg.Project.TestCommand,
		deployCmd: cfg.Project.DeployCommand,
		env:       cfg.Project.Env,
		logger:    logger,
	}
}

// HasTests reports whether a test command is configured.
func (p *ExecProject) HasTests() bool {
	return p.testCmd != ""
}

// RunTests runs the configured test command and returns its outcome token.
func (p *ExecProject) RunTests(ctx context.Context) string {
	return p.runCommand(ctx, p.testCmd)
}

// Deploy runs the configured deploy command and returns its outcome token.
func (p *ExecProject) Deploy(ctx context.Context) string {
	return p.runCommand(ctx, p.deployCmd)
}

func (p *ExecProject) runCommand(ctx context.Context, command string) string {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return "empty-command"
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = p.dir

	env := os.Environ()
	for k, v := range p.env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		p.logger.Debug("command failed", map[string]any{
			"command": command,
			"error":   err.Error(),
			"output":  output.String(),
		})
		return "failure"
	}

	p.logger.Debug("command succeeded", map[string]any{"command": command})
	return pipeline.SuccessToken
}
