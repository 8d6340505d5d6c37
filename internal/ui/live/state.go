package live

// State tracks the running score shown in feedback.
type State struct {
	SessionID string
	Planned   int
	Answered  int
	Correct   int
	Incorrect int
	Quit      bool
	LastEvent string
}
