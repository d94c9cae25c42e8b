// Package access is the single authority for authorization decisions.
// Every predicate is a pure total function over domain values: a nil
// actor means unauthenticated, and every check fails closed. Predicates
// never return errors; callers translate false into the appropriate
// typed failure.
package access

import "github.com/kudoshq/recognition-api/internal/core/domain"

// IsAuthenticated reports whether an actor is present.
func IsAuthenticated(actor *domain.User) bool {
	return actor != nil
}

// HasRole reports whether the actor holds one of the given roles.
// Fails closed for unauthenticated actors.
func HasRole(actor *domain.User, roles ...domain.Role) bool {
	if actor == nil {
		return false
	}
	for _, r := range roles {
		if actor.Role == r {
			return true
		}
	}
	return false
}

// IsManagerOrAbove reports whether the actor is MANAGER, HR or ADMIN.
func IsManagerOrAbove(actor *domain.User) bool {
	return HasRole(actor, domain.RoleManager, domain.RoleHR, domain.RoleAdmin)
}

// IsHROrAdmin reports whether the actor is HR or ADMIN.
func IsHROrAdmin(actor *domain.User) bool {
	return HasRole(actor, domain.RoleHR, domain.RoleAdmin)
}

// CanViewRecognition decides visibility of a single recognition.
// Checks are ordered; the first match wins:
//
//  1. unauthenticated actors see nothing
//  2. HR/ADMIN see everything
//  3. the recipient always sees it
//  4. the sender sees it unless it was sent anonymously
//  5. PUBLIC is visible to any authenticated actor
//  6. PRIVATE is visible to sender and recipient only
//  7. ANONYMOUS is visible to the recipient only
func CanViewRecognition(actor *domain.User, rec *domain.Recognition) bool {
	if actor == nil || rec == nil {
		return false
	}
	if IsHROrAdmin(actor) {
		return true
	}
	if rec.ToUserID == actor.ID {
		return true
	}
	if rec.Sender.Is(actor.ID) && rec.Visibility != domain.VisibilityAnonymous {
		return true
	}
	switch rec.Visibility {
	case domain.VisibilityPublic:
		return true
	case domain.VisibilityPrivate:
		return rec.Sender.Is(actor.ID) || rec.ToUserID == actor.ID
	case domain.VisibilityAnonymous:
		return rec.ToUserID == actor.ID
	}
	return false
}

// CanDeleteRecognition allows HR/ADMIN to delete anything and otherwise
// only the original sender. An anonymous recognition stores no sender,
// so its originator can never satisfy the sender check.
func CanDeleteRecognition(actor *domain.User, rec *domain.Recognition) bool {
	if actor == nil || rec == nil {
		return false
	}
	if IsHROrAdmin(actor) {
		return true
	}
	return rec.Sender.Is(actor.ID)
}

// CanViewTeamData allows HR/ADMIN everywhere and everyone else only
// within their own team. Managers get no broader access than employees.
func CanViewTeamData(actor *domain.User, teamID string) bool {
	if actor == nil {
		return false
	}
	if IsHROrAdmin(actor) {
		return true
	}
	return actor.TeamID == teamID
}

// CanViewUserData decides access to another user's data. The target is
// the resolved user record for targetUserID, nil when it does not
// resolve; a manager's same-team check fails closed on nil.
func CanViewUserData(actor *domain.User, targetUserID string, target *domain.User) bool {
	if actor == nil {
		return false
	}
	if IsHROrAdmin(actor) {
		return true
	}
	if actor.ID == targetUserID {
		return true
	}
	if actor.Role == domain.RoleManager {
		return target != nil && target.TeamID == actor.TeamID
	}
	return false
}

// CanViewAnalytics restricts analytics queries to MANAGER and above.
func CanViewAnalytics(actor *domain.User) bool {
	return IsManagerOrAbove(actor)
}
