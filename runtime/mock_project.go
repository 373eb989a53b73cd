package runtime

import "context"

// MockProject implements the pipeline's Project capability with canned
// outcomes. Useful for exercising pipeline wiring without a real checkout,
// which is what `shipline run --dry-run` does.
type MockProject struct {
	Tests         bool
	TestOutcome   string
	DeployOutcome string

	TestRuns int
	Deploys  int
}

func (m *MockProject) HasTests() bool { return m.Tests }

func (m *MockProject) RunTests(ctx context.Context) string {
	m.TestRuns++
	return m.TestOutcome
}

func (m *MockProject) Deploy(ctx context.Context) string {
	m.Deploys++
	return m.DeployOutcome
}
