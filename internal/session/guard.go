package session

import (
	"github.com/bachelormess/mess-manager/models"
)

// Requirement declares what a screen demands from the session before it may
// be shown. Build one with Public, Authenticated or Roles.
type Requirement struct {
	kind  requirementKind
	roles []models.Role
}

type requirementKind int

const (
	requirePublic requirementKind = iota
	requireAuthenticated
	requireRoles
)

// Public is satisfied by anyone, signed in or not.
func Public() Requirement {
	return Requirement{kind: requirePublic}
}

// Authenticated requires a signed-in session of any role.
func Authenticated() Requirement {
	return Requirement{kind: requireAuthenticated}
}

// Roles requires a signed-in session holding one of the given roles.
// Role hierarchy applies, so super_admin passes an admin requirement.
func Roles(roles ...models.Role) Requirement {
	return Requirement{kind: requireRoles, roles: roles}
}

// Decision is the guard's verdict for one navigation attempt.
type Decision int

const (
	// Hold means the session is still uninitialized. Render a neutral
	// loading view and re-ask once the session resolves; redirecting now
	// would flash the wrong screen.
	Hold Decision = iota

	// Allow lets the navigation through.
	Allow

	// RedirectToLogin means the screen needs a session and none is active.
	RedirectToLogin

	// RedirectToHome means the session is valid but its role does not
	// reach the screen's requirement.
	RedirectToHome
)

// Decide maps a session snapshot and a screen requirement to a navigation
// decision. It is a pure function; rule order matters and is fixed:
// uninitialized holds, public always passes, anonymous sessions go to login,
// insufficient roles go home, everything else passes.
func Decide(snapshot Snapshot, requirement Requirement) Decision {
	if snapshot.State == StateUninitialized {
		return Hold
	}

	if requirement.kind == requirePublic {
		return Allow
	}

	if !snapshot.Authenticated() {
		return RedirectToLogin
	}

	if requirement.kind == requireRoles && !holdsAny(snapshot.Identity.Role, requirement.roles) {
		return RedirectToHome
	}

	return Allow
}

func holdsAny(role models.Role, required []models.Role) bool {
	for _, r := range required {
		if role.Satisfies(r) {
			return true
		}
	}
	return false
}
