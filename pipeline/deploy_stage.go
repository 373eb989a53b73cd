package pipeline

import "context"

// DeployStage deploys the project when the test stage recorded success. When
// it did not, the stage does nothing and records nothing: downstream reads of
// deploySuccessful then fall back to the store's false-on-absent default.
type DeployStage struct {
	Log Logger
}

func (s *DeployStage) Name() string { return "deploy" }

func (s *DeployStage) Execute(ctx context.Context, project Project, results *Results) {
	if !results.Success(KeyTestsPassed) {
		return
	}

	ok := project.Deploy(ctx) == SuccessToken
	if ok {
		s.Log.Info("Deployment successful", nil)
	} else {
		s.Log.Error("Deployment failed", nil)
	}
	results.Report(KeyDeploySuccessful, ok)
}
