// Package session owns the authentication state of the client: anonymous,
// guest or authenticated, and the credentials that survive restarts.
package session

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleNone      Role = ""
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

// ParseRole accepts the user_type values issued by the service.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCandidate:
		return RoleCandidate, nil
	case RoleRecruiter:
		return RoleRecruiter, nil
	default:
		return RoleNone, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}

// State is a single enum so that authenticated and guest can never be set
// at the same time.
type State int

const (
	StateAnonymous State = iota
	StateGuest
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateGuest:
		return "guest"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is an immutable snapshot handed to the access gate and the
// coordinators. Only the Store produces new values.
type Session struct {
	State    State
	Username string
	Role     Role
	Token    string
}

// Anonymous returns the logged-out session.
func Anonymous() Session {
	return Session{State: StateAnonymous}
}

func (s Session) IsAuthenticated() bool { return s.State == StateAuthenticated }

func (s Session) IsGuest() bool { return s.State == StateGuest }

func (s Session) IsAnonymous() bool { return s.State == StateAnonymous }

// Capabilities returns what the session may do inside a role-scoped area.
// Guest mode downgrades capabilities: browsing stays, submission goes.
func (s Session) Capabilities() Capabilities {
	switch s.State {
	case StateAuthenticated:
		return Capabilities{Browse: true, Submit: true}
	case StateGuest:
		return Capabilities{Browse: true}
	default:
		return Capabilities{}
	}
}

// Capabilities is the explicit capability flag carried alongside a session.
type Capabilities struct {
	Browse bool
	Submit bool
}
