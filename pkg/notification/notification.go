package notification

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"forum/pkg/user"
)

type Type string

const (
	CommentOnPost  Type = "COMMENT_ON_POST"
	ReplyToComment Type = "REPLY_TO_COMMENT"
)

// Stored content is cut to this many runes.
const maxContentLen = 100

func (t Type) Action() string {
	switch t {
	case CommentOnPost:
		return "commented on your post"
	case ReplyToComment:
		return "replied to your comment"
	default:
		return ""
	}
}

// Short is the lower-case first word of the type: "comment" or "reply".
func (t Type) Short() string {
	return strings.ToLower(strings.SplitN(string(t), "_", 2)[0])
}

type Notification struct {
	Id          string    `bson:"id"`
	RecipientId int64     `bson:"recipient_id"`
	ActorId     int64     `bson:"actor_id"`
	ActorName   string    `bson:"actor_name"`
	Type        Type      `bson:"type"`
	Content     string    `bson:"content"`
	Read        bool      `bson:"read"`
	Created     time.Time `bson:"created"`
}

// View is the client representation of a notification.
type View struct {
	Id          string `json:"id"`
	Type        string `json:"type"`
	User        string `json:"user"`
	UserInitial string `json:"userInitial"`
	Action      string `json:"action"`
	Content     string `json:"content"`
	Time        string `json:"time"`
	Read        bool   `json:"read"`
}

func (n *Notification) View(now time.Time) *View {
	return &View{
		Id:          n.Id,
		Type:        n.Type.Short(),
		User:        n.ActorName,
		UserInitial: (&user.User{Username: n.ActorName}).Initial(),
		Action:      n.Type.Action(),
		Content:     n.Content,
		Time:        timeAgo(now.Sub(n.Created)),
		Read:        n.Read,
	}
}

func timeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
