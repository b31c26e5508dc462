package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationView(t *testing.T) {
	now := time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tc := range cases {
		n := &Notification{
			Id:        "n1",
			ActorName: "pike",
			Type:      ReplyToComment,
			Content:   "nice",
			Created:   now.Add(-tc.ago),
		}
		v := n.View(now)
		assert.Equal(t, tc.want, v.Time)
		assert.Equal(t, "reply", v.Type)
		assert.Equal(t, "p", v.UserInitial)
		assert.Equal(t, "replied to your comment", v.Action)
	}

	assert.Equal(t, "comment", CommentOnPost.Short())
	assert.Equal(t, "commented on your post", CommentOnPost.Action())
}
