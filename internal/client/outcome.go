package client

// Outcome tells the enclosing loop what to do after a phase finishes.
type Outcome int

const (
	// OutcomeContinue keeps the current session going.
	OutcomeContinue Outcome = iota
	// OutcomeLoggedOut ends the session and returns to the login prompt.
	OutcomeLoggedOut
	// OutcomeQuit ends the program.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeLoggedOut:
		return "logged_out"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}
