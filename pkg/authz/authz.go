// Package authz is the single ownership check used before any post or
// comment mutation.
package authz

import (
	"forum/pkg/common"
	"forum/pkg/user"
)

// IsOwner reports whether the acting identity authored the resource.
// Unresolved (zero) identities never own anything.
func IsOwner(actorId, authorId int64) bool {
	return actorId != 0 && authorId != 0 && actorId == authorId
}

// RequireOwner fails with common.ErrForbidden unless actor authored the resource.
func RequireOwner(actor *user.User, authorId int64, resource string) error {
	if actor == nil || !IsOwner(actor.Id, authorId) {
		return common.Forbiddenf("you are not the author of this %s", resource)
	}
	return nil
}
