package pipeline

import "context"

// TestStage runs the project's tests and records the outcome under
// testsPassed. A project without tests counts as passing and its RunTests is
// never called.
type TestStage struct {
	Log Logger
}

func (s *TestStage) Name() string { return "test" }

func (s *TestStage) Execute(ctx context.Context, project Project, results *Results) {
	if !project.HasTests() {
		s.Log.Info("No tests", nil)
		results.Report(KeyTestsPassed, true)
		return
	}

	passed := project.RunTests(ctx) == SuccessToken
	if passed {
		s.Log.Info("Tests passed", nil)
	} else {
		s.Log.Error("Tests failed", nil)
	}
	results.Report(KeyTestsPassed, passed)
}
