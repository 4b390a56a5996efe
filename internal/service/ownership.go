package service

import "errors"

var (
	// ErrForbidden reports a resource that exists but belongs to another user.
	// Callers translate it to 403, distinct from the repository not-found
	// errors that become 404.
	ErrForbidden = errors.New("forbidden")

	// ErrEmptyUpdate reports a partial update without any field.
	ErrEmptyUpdate = errors.New("at least one field is required")
)

// requireOwner authorizes a caller against a resource's resolved owner. Every
// ownership check goes through here, whether the owner comes from a
// denormalized user id on the resource or from its parent log, so the nested
// and top-level trade routes cannot diverge.
func requireOwner(ownerID, userID string) error {
	if ownerID != userID {
		return ErrForbidden
	}
	return nil
}
