package auth

import (
	"testing"

	"blogapi/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	owner := models.User{ID: "u1", Role: models.RoleUser}
	other := models.User{ID: "u2", Role: models.RoleUser}
	admin := models.User{ID: "u3", Role: models.RoleAdmin}

	post := models.Post{ID: "p1", AuthorID: "u1"}
	comment := models.Comment{ID: "c1", PostID: "p1", AuthorID: "u2"}

	// resource ownership
	assert.True(t, CanMutate(owner, post))
	assert.False(t, CanMutate(other, post))
	assert.True(t, CanMutate(other, comment))
	assert.False(t, CanMutate(owner, comment), "post author does not own its comments")

	// admin override on every resource type
	assert.True(t, CanMutate(admin, post))
	assert.True(t, CanMutate(admin, comment))
	assert.True(t, CanMutate(admin, owner))

	// account self-mutation
	assert.True(t, CanMutate(owner, owner))
	assert.False(t, CanMutate(other, owner))
}

func TestCanMutateZeroPrincipal(t *testing.T) {
	// An empty principal must not match a resource with an empty owner.
	assert.False(t, CanMutate(models.User{}, models.Post{}))
}
