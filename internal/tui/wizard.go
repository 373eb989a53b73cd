package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Answers holds everything the init wizard collects.
type Answers struct {
	Name          string
	TestCommand   string
	DeployCommand string

	EmailEnabled bool
	SMTPHost     string
	SMTPPort     int
	From         string
	To           []string
}

// field is one wizard question backed by a text input.
type field struct {
	key       string
	prompt    string
	emailOnly bool // asked only when the summary email is enabled
	validate  func(string) error
	input     textinput.Model
}

func required(name string) func(string) error {
	return func(val string) error {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func yesNo(val string) error {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "y", "yes", "n", "no", "":
		return nil
	}
	return fmt.Errorf("answer y or n")
}

func numericOrEmpty(val string) error {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(val)); err != nil {
		return fmt.Errorf("port must be a number")
	}
	return nil
}

func newField(key, prompt, placeholder string, emailOnly bool, validate func(string) error) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 48
	return field{key: key, prompt: prompt, emailOnly: emailOnly, validate: validate, input: ti}
}

// WizardModel is the bubbletea model driving `shipline init`.
type WizardModel struct {
	styles  *StyleSet
	version string
	fields  []field
	current int
	width   int
	errMsg  string
	done    bool
	aborted bool
}

// NewWizardModel creates the init wizard.
func NewWizardModel(theme TermTheme, version string) WizardModel {
	fields := []field{
		newField("name", "Project name", "my-service", false, required("project name")),
		newField("test_command", "Test command (empty for no tests)", "go test ./...", false, nil),
		newField("deploy_command", "Deploy command", "./scripts/deploy.sh", false, required("deploy command")),
		newField("email", "Send a summary email after each run? (y/N)", "n", false, yesNo),
		newField("smtp_host", "SMTP host", "smtp.example.com", true, required("SMTP host")),
		newField("smtp_port", "SMTP port", "25", true, numericOrEmpty),
		newField("from", "From address", "ci@example.com", true, required("from address")),
		newField("to", "Recipients (comma separated)", "team@example.com", true, required("recipients")),
	}
	fields[0].input.Focus()

	return WizardModel{
		styles:  NewStyleSet(theme),
		version: version,
		fields:  fields,
		width:   80,
	}
}

// Init starts the cursor blink for the first field.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and window events.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.fields[m.current].input, cmd = m.fields[m.current].input.Update(msg)
	return m, cmd
}

// advance validates the current answer and moves to the next applicable field.
func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	f := &m.fields[m.current]
	if f.validate != nil {
		if err := f.validate(f.input.Value()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	}
	m.errMsg = ""
	f.input.Blur()

	emailEnabled := m.emailEnabled()
	next := m.current + 1
	for next < len(m.fields) && m.fields[next].emailOnly && !emailEnabled {
		next++
	}
	if next >= len(m.fields) {
		m.done = true
		return m, tea.Quit
	}

	m.current = next
	m.fields[m.current].input.Focus()
	return m, textinput.Blink
}

func (m WizardModel) emailEnabled() bool {
	for _, f := range m.fields {
		if f.key == "email" {
			switch strings.ToLower(strings.TrimSpace(f.input.Value())) {
			case "y", "yes":
				return true
			}
			return false
		}
	}
	return false
}

// View renders the banner, answered fields, and the active question.
func (m WizardModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + m.styles.Banner.Render("⛵ S H I P L I N E") + "  " +
		m.styles.DimTxt.Render("v"+m.version) + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("Test, deploy, and notify in one run.") + "\n\n")

	for i := 0; i < m.current; i++ {
		f := m.fields[i]
		if f.emailOnly && !m.emailEnabled() {
			continue
		}
		val := f.input.Value()
		if val == "" {
			val = m.styles.DimTxt.Render("(none)")
		}
		b.WriteString("  " + m.styles.SummaryKey.Render(f.key) +
			m.styles.SummaryValue.Render(val) + "\n")
	}

	f := m.fields[m.current]
	b.WriteString("\n  " + m.styles.Title.Render(f.prompt) + "\n")
	b.WriteString("  " + f.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString("  " + m.styles.ErrorTxt.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n  " + m.styles.DimTxt.Render("enter to continue · esc to abort") + "\n")
	return b.String()
}

// Done reports whether the wizard ran to completion.
func (m WizardModel) Done() bool { return m.done }

// Aborted reports whether the user bailed out.
func (m WizardModel) Aborted() bool { return m.aborted }

// Answers returns the collected answers. Only meaningful when Done.
func (m WizardModel) Answers() Answers {
	a := Answers{SMTPPort: 25}
	for _, f := range m.fields {
		val := strings.TrimSpace(f.input.Value())
		switch f.key {
		case "name":
			a.Name = val
		case "test_command":
			a.TestCommand = val
		case "deploy_command":
			a.DeployCommand = val
		case "email":
			a.EmailEnabled = m.emailEnabled()
		case "smtp_host":
			a.SMTPHost = val
		case "smtp_port":
			if port, err := strconv.Atoi(val); err == nil && port > 0 {
				a.SMTPPort = port
			}
		case "from":
			a.From = val
		case "to":
			for _, addr := range strings.Split(val, ",") {
				if addr = strings.TrimSpace(addr); addr != "" {
					a.To = append(a.To, addr)
				}
			}
		}
	}
	return a
}
