package naming

import (
	apperrors "github.com/backmassage/splitmux/internal/errors"
)

// CollisionResolver tracks which unit owns each output path while a plan
// is built. It is not safe for concurrent use.
type CollisionResolver struct {
	owners map[string]string // output path -> owner key
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners: make(map[string]string),
	}
}

// Claim records owner as the producer of output. Claiming a path already
// held by a different owner is a validation error; re-claiming by the same
// owner is a no-op. owner identifies the unit (an input path, or a chapter
// position and title).
func (cr *CollisionResolver) Claim(owner, output string) error {
	if prev, exists := cr.owners[output]; exists && prev != owner {
		return apperrors.Validationf("output path %s for %s collides with %s", output, owner, prev)
	}
	cr.owners[output] = owner
	return nil
}
