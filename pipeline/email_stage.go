package pipeline

import "context"

// EmailStage mails a one-line summary of the run. Exactly one message goes
// out per execution, chosen from the recorded test and deploy outcomes.
type EmailStage struct {
	Log  Logger
	Mail Emailer
}

func (s *EmailStage) Name() string { return "email" }

func (s *EmailStage) Execute(ctx context.Context, project Project, results *Results) {
	// Logged before any outcome is inspected; callers observe this line
	// even when the tests-failed message is the one that goes out.
	s.Log.Info("Sending email", nil)

	if !results.Success(KeyTestsPassed) {
		s.Mail.Send("Tests failed")
		return
	}
	if results.Success(KeyDeploySuccessful) {
		s.Mail.Send("Deployment completed successfully")
	} else {
		s.Mail.Send("Deployment failed")
	}
}

// DisabledEmailStage takes the email stage's slot when the summary email is
// turned off in configuration. It only logs; no message is ever sent.
type DisabledEmailStage struct {
	Log Logger
}

func (s *DisabledEmailStage) Name() string { return "email" }

func (s *DisabledEmailStage) Execute(ctx context.Context, project Project, results *Results) {
	s.Log.Info("Email disabled", nil)
}
