package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forum/pkg/common"
	"forum/pkg/user"
)

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner(3, 3))
	assert.False(t, IsOwner(3, 4))
	assert.False(t, IsOwner(0, 0))
	assert.False(t, IsOwner(0, 4))
}

func TestRequireOwner(t *testing.T) {
	author := &user.User{Id: 1, Username: "pike"}
	other := &user.User{Id: 2, Username: "pike"}

	assert.NoError(t, RequireOwner(author, 1, "comment"))

	err := RequireOwner(other, 1, "comment")
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.EqualError(t, err, "you are not the author of this comment")

	assert.ErrorIs(t, RequireOwner(nil, 1, "post"), common.ErrForbidden)
}
