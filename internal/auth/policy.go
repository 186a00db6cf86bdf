package auth

import "blogapi/internal/models"

// Resource is anything subject to an authorization decision: a post, a
// comment, or an account (which owns itself).
type Resource interface {
	OwnerID() string
}

// CanMutate decides whether principal may update or delete res. Admins may
// mutate anything; everyone else only what they own. Deterministic and
// side-effect-free; existence of res is the caller's problem and must be
// checked first so not-found never degrades into forbidden.
func CanMutate(principal models.User, res Resource) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.ID != "" && principal.ID == res.OwnerID()
}
