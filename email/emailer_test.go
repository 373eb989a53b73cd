package email

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shipline/shipline/config"
	"github.com/shipline/shipline/runtime"
)

func TestWriterEmailer_Send(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterEmailer(&buf)

	e.Send("Deployment completed successfully")
	e.Send("Tests failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "email: Deployment completed successfully" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "email: Tests failed" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestNewSMTPEmailer_Defaults(t *testing.T) {
	log := runtime.NewJSONLogger(io.Discard, false)

	e := NewSMTPEmailer(config.EmailConfig{
		SMTPHost: "smtp.example.com",
		From:     "ci@example.com",
		To:       []string{"team@example.com"},
	}, log)

	if e.addr != "smtp.example.com:25" {
		t.Errorf("addr = %q, want default port 25", e.addr)
	}
	if e.auth != nil {
		t.Error("auth should be nil without a username")
	}
}

func TestNewSMTPEmailer_ExplicitPortAndAuth(t *testing.T) {
	log := runtime.NewJSONLogger(io.Discard, false)

	e := NewSMTPEmailer(config.EmailConfig{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		From:     "ci@example.com",
		To:       []string{"team@example.com"},
		Username: "ci",
		Password: "hunter2",
	}, log)

	if e.addr != "smtp.example.com:587" {
		t.Errorf("addr = %q", e.addr)
	}
	if e.auth == nil {
		t.Error("auth should be set when a username is configured")
	}
}

// Delivery failures are logged, never propagated.
func TestSMTPEmailer_SendFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	log := runtime.NewJSONLogger(&buf, false)

	e := NewSMTPEmailer(config.EmailConfig{
		SMTPHost: "127.0.0.1",
		SMTPPort: 1, // nothing listens here
		From:     "ci@example.com",
		To:       []string{"team@example.com"},
	}, log)

	e.Send("Deployment failed")

	if !strings.Contains(buf.String(), "email delivery failed") {
		t.Errorf("expected delivery failure log, got %q", buf.String())
	}
}
