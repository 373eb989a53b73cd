package pipeline

import "context"

// fakeProject is a Project with canned outcomes and call counters.
type fakeProject struct {
	tests         bool
	testOutcome   string
	deployOutcome string

	runTestsCalls int
	deployCalls   int
}

func (p *fakeProject) HasTests() bool { return p.tests }

func (p *fakeProject) RunTests(ctx context.Context) string {
	p.runTestsCalls++
	return p.testOutcome
}

func (p *fakeProject) Deploy(ctx context.Context) string {
	p.deployCalls++
	return p.deployOutcome
}

// recordingLogger captures log lines as "level: msg" in call order.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(msg string, fields map[string]any) {
	l.lines = append(l.lines, "info: "+msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]any) {
	l.lines = append(l.lines, "error: "+msg)
}

// debugRecordingLogger additionally captures debug entries as "msg stage".
type debugRecordingLogger struct {
	recordingLogger
	debugs []string
}

func (l *debugRecordingLogger) Debug(msg string, fields map[string]any) {
	stage, _ := fields["stage"].(string)
	l.debugs = append(l.debugs, msg+" "+stage)
}

// recordingEmailer captures sent messages in order.
type recordingEmailer struct {
	sent []string
}

func (e *recordingEmailer) Send(message string) {
	e.sent = append(e.sent, message)
}

// staticConfig is a Config with a fixed email setting.
type staticConfig bool

func (c staticConfig) SendEmailSummary() bool { return bool(c) }

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
