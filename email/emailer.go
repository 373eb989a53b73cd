// Package email provides summary-mail senders for the pipeline.
package email

import (
	"fmt"
	"io"
	"net/smtp"
	"os"
	"strings"
	"sync"

	"github.com/shipline/shipline/config"
	"github.com/shipline/shipline/runtime"
)

// WriterEmailer writes each message to an io.Writer, one per line. Used for
// dry runs and tests.
type WriterEmailer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterEmailer creates a WriterEmailer writing to w.
func NewWriterEmailer(w io.Writer) *WriterEmailer {
	return &WriterEmailer{w: w}
}

// Send writes the message to the underlying writer.
func (e *WriterEmailer) Send(message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.w, "email: %s\n", message) //nolint:errcheck
}

// SMTPEmailer delivers the summary message over SMTP. Send is fire-and-forget
// from the pipeline's perspective: delivery failures are logged and dropped.
type SMTPEmailer struct {
	addr   string
	from   string
	to     []string
	auth   smtp.Auth
	logger runtime.Logger
}

// NewSMTPEmailer creates an SMTPEmailer from the email section of a config.
// The SMTP password is taken from SHIPLINE_SMTP_PASSWORD when set, falling
// back to the config value.
func NewSMTPEmailer(cfg config.EmailConfig, logger runtime.Logger) *SMTPEmailer {
	port := cfg.SMTPPort
	if port == 0 {
		port = 25
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		password := os.Getenv("SHIPLINE_SMTP_PASSWORD")
		if password == "" {
			password = cfg.Password
		}
		auth = smtp.PlainAuth("", cfg.Username, password, cfg.SMTPHost)
	}

	return &SMTPEmailer{
		addr:   fmt.Sprintf("%s:%d", cfg.SMTPHost, port),
		from:   cfg.From,
		to:     cfg.To,
		auth:   auth,
		logger: logger,
	}
}

// Send delivers the message as both subject and body to all recipients.
func (e *SMTPEmailer) Send(message string) {
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: shipline: %s\r\n\r\n%s\r\n",
		e.from, strings.Join(e.to, ", "), message, message)

	if err := smtp.SendMail(e.addr, e.auth, e.from, e.to, []byte(body)); err != nil {
		e.logger.Error("email delivery failed", map[string]any{
			"server": e.addr,
			"error":  err.Error(),
		})
		return
	}
	e.logger.Debug("email delivered", map[string]any{"server": e.addr, "to": e.to})
}
