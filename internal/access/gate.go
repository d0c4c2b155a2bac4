// Package access decides whether the current session may enter an area of
// the portal.
package access

import (
	"fmt"

	"github.com/spigell/hiring-portal/internal/session"
)

type Destination string

const (
	Home          Destination = "home"
	CandidateArea Destination = "candidate"
	RecruiterArea Destination = "recruiter"
)

// Role returns the role the destination is scoped to, if any.
func (d Destination) Role() session.Role {
	switch d {
	case CandidateArea:
		return session.RoleCandidate
	case RecruiterArea:
		return session.RoleRecruiter
	default:
		return session.RoleNone
	}
}

type Decision int

const (
	Allow Decision = iota
	// NeedsAuth redirects to authentication; the caller should also offer
	// guest entry.
	NeedsAuth
	// AllowAsGuest admits with browse-only capabilities.
	AllowAsGuest
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case NeedsAuth:
		return "needs_auth"
	case AllowAsGuest:
		return "allow_as_guest"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// CanEnter applies the access rules. Role is advisory: an authenticated
// user of one role may enter the other role's area. Destinations the gate
// does not know require authentication.
func CanEnter(dest Destination, s session.Session) Decision {
	switch dest {
	case Home:
		return Allow
	case CandidateArea, RecruiterArea:
	default:
		return NeedsAuth
	}

	switch s.State {
	case session.StateAuthenticated:
		return Allow
	case session.StateGuest:
		return AllowAsGuest
	default:
		return NeedsAuth
	}
}

// Capabilities returns what s may do once d admitted it. A decision never
// grants more than the session itself carries.
func Capabilities(d Decision, s session.Session) session.Capabilities {
	own := s.Capabilities()
	switch d {
	case Allow:
		return session.Capabilities{Browse: true, Submit: own.Submit}
	case AllowAsGuest:
		return session.Capabilities{Browse: true}
	default:
		return session.Capabilities{}
	}
}
