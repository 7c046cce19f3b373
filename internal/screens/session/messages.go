package session

import (
	"github.com/abhisek/precis/internal/workflow"
)

// preparedMsg is sent when keywords, glosses and the reference summary are
// ready. Session is the updated copy the command worked on.
type preparedMsg struct {
	Session *workflow.Session
	Err     error
}

// reviewedMsg is sent when feedback on the teacher's summary is ready.
type reviewedMsg struct {
	Session *workflow.Session
	Err     error
}

// surveySubmittedMsg is sent when the questionnaire has been recorded, or
// recording failed.
type surveySubmittedMsg struct {
	Session *workflow.Session
	Err     error
}
