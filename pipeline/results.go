package pipeline

// Keys under which stages record their outcome.
const (
	KeyTestsPassed      = "testsPassed"
	KeyDeploySuccessful = "deploySuccessful"
)

// Results records stage outcomes for a single pipeline run. A key that was
// never reported reads as false, which deliberately collapses "stage skipped"
// and "stage failed": no stage distinguishes the two when deciding what to
// do. One run owns one Results; it is never shared across runs.
type Results struct {
	outcomes map[string]bool
}

// NewResults creates an empty results store.
func NewResults() *Results {
	return &Results{outcomes: make(map[string]bool)}
}

// Report stores the outcome for key, overwriting any previous value.
func (r *Results) Report(key string, ok bool) {
	r.outcomes[key] = ok
}

// Success returns the recorded outcome for key, or false if key was never
// reported.
func (r *Results) Success(key string) bool {
	return r.outcomes[key]
}
