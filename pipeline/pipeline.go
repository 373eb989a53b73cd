// Package pipeline implements the sequential test, deploy, and email-summary
// pipeline for a single project run.
package pipeline

import "context"

// SuccessToken is the outcome value a project call must return for the call
// to count as successful. Any other value, including empty, is failure.
const SuccessToken = "success"

// Project exposes the capabilities of the thing being built.
type Project interface {
	HasTests() bool
	RunTests(ctx context.Context) string
	Deploy(ctx context.Context) string
}

// Emailer sends a one-line summary message. Delivery is fire-and-forget; the
// pipeline never inspects the result.
type Emailer interface {
	Send(message string)
}

// Logger is the logging capability consumed by pipeline stages.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// Config supplies the settings the pipeline consults at construction time.
type Config interface {
	SendEmailSummary() bool
}

// Stage is a single unit of work in a pipeline run. A stage signals business
// failure by recording a boolean in the results store, never by panicking or
// returning an error.
type Stage interface {
	Name() string
	Execute(ctx context.Context, project Project, results *Results)
}

// Pipeline executes a fixed sequence of stages in order.
type Pipeline struct {
	stages []Stage
	log    Logger
}

// New assembles the standard three-stage pipeline. The email stage variant is
// chosen here, once, from the configuration; it is not re-evaluated per run.
func New(cfg Config, mail Emailer, log Logger) *Pipeline {
	var email Stage = &EmailStage{Log: log, Mail: mail}
	if !cfg.SendEmailSummary() {
		email = &DisabledEmailStage{Log: log}
	}
	return &Pipeline{
		stages: []Stage{
			&TestStage{Log: log},
			&DeployStage{Log: log},
			email,
		},
		log: log,
	}
}

// Run drives one pipeline run: a fresh results store, each stage exactly
// once, in order. The run's outcome is observable only through stage side
// effects (log lines, at most one deploy, at most one email).
func (p *Pipeline) Run(ctx context.Context, project Project) {
	p.RunWith(ctx, project, NewResults())
}

// RunWith drives one run against a caller-supplied results store, so the
// caller can inspect the recorded outcomes afterwards. The store must be
// fresh: one Results per run.
func (p *Pipeline) RunWith(ctx context.Context, project Project, results *Results) {
	for _, s := range p.stages {
		p.debug("stage starting", s.Name())
		s.Execute(ctx, project, results)
		p.debug("stage finished", s.Name())
	}
}

// debugLogger is satisfied by loggers that carry a debug level, such as
// runtime.JSONLogger. Stage transitions are only traced through it, so the
// stages' own info/error lines stay the complete non-verbose output.
type debugLogger interface {
	Debug(msg string, fields map[string]any)
}

func (p *Pipeline) debug(msg, stage string) {
	if d, ok := p.log.(debugLogger); ok {
		d.Debug(msg, map[string]any{"stage": stage})
	}
}
