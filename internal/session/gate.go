package session

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/go-pos-terminal/internal/apperr"
	"github.com/imrishuroy/go-pos-terminal/internal/validation"
)

var (
	// ErrMissingCredentials is returned when either field is blank after trimming.
	ErrMissingCredentials = apperr.New(apperr.KindValidation, "Please enter both username and password")
	// ErrInvalidCredentials is returned when no account matches both fields exactly.
	ErrInvalidCredentials = apperr.New(apperr.KindAuth, "Invalid username or password")
)

// Outcome is the result of a successful Authenticate call.
type Outcome struct {
	Username string
	Role     string
}

// Gate checks submitted credentials against a fixed list.
type Gate struct {
	credentials []Credential
	v           *validatorv10.Validate
}

// NewGate copies creds so later changes by the caller have no effect.
func NewGate(creds []Credential) *Gate {
	cp := make([]Credential, len(creds))
	copy(cp, creds)
	return &Gate{credentials: cp, v: validation.New()}
}

// Authenticate matches username and password case-sensitively. It has no side effects.
func (g *Gate) Authenticate(username, password string) (Outcome, error) {
	if err := g.v.Struct(validation.LoginRequest{Username: username, Password: password}); err != nil {
		return Outcome{}, ErrMissingCredentials
	}
	for _, c := range g.credentials {
		if c.Username == username && c.Password == password {
			return Outcome{Username: c.Username, Role: c.Role}, nil
		}
	}
	return Outcome{}, ErrInvalidCredentials
}
