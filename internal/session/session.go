package session

// State of a terminal session.
type State string

const (
	StateLoggedOut State = "LOGGED_OUT"
	StateLoggedIn  State = "LOGGED_IN"
)

// Session tracks who is signed in. The zero value is logged out.
type Session struct {
	state    State
	username string
	role     string
}

// Begin moves to LoggedIn for the authenticated user, replacing any previous user.
func (s *Session) Begin(o Outcome) {
	s.state = StateLoggedIn
	s.username = o.Username
	s.role = o.Role
}

// End moves to LoggedOut.
func (s *Session) End() {
	*s = Session{}
}

// State returns the current state. The zero Session reports StateLoggedOut.
func (s *Session) State() State {
	if s.state == "" {
		return StateLoggedOut
	}
	return s.state
}

// LoggedIn reports whether a user is signed in.
func (s *Session) LoggedIn() bool { return s.state == StateLoggedIn }

// Username is the signed-in user, empty when logged out.
func (s *Session) Username() string { return s.username }

// Role is the signed-in user's role, empty when logged out.
func (s *Session) Role() string { return s.role }
