package post

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forum/pkg/community"
	"forum/pkg/user"
	"forum/pkg/voting"
)

func TestPostView(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &Post{
		Id:             3,
		Title:          "hello",
		Author:         &user.User{Id: 7, Username: "élodie"},
		CommunityName:  "golang",
		CommunityTheme: community.Purple,
		Votes:          -2,
		CommentCount:   4,
		Created:        created,
		Updated:        created,
	}

	v := p.View(voting.Down)
	assert.Equal(t, "é", v.AuthorInitial)
	assert.Equal(t, "bg-purple-500", v.CommunityColor)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"myVote":"DOWN"`)
	assert.Contains(t, string(out), `"commentCount":4`)

	out, err = json.Marshal(p.View(voting.None))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"myVote":null`)
}
