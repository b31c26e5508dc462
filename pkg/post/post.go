package post

import (
	"time"

	"forum/pkg/community"
	"forum/pkg/user"
	"forum/pkg/voting"
)

type Post struct {
	Id             int64
	Title          string
	Content        string
	Author         *user.User
	CommunityId    int64
	CommunityName  string
	CommunityTheme community.ColorTheme
	Votes          int
	CommentCount   int
	Created        time.Time
	Updated        time.Time
}

// View is the post as the client sees it. MyVote is the viewer's own vote,
// null for anonymous viewers or when they have not voted.
type View struct {
	Id             int64            `json:"id"`
	Title          string           `json:"title"`
	Content        string           `json:"content"`
	Author         string           `json:"author"`
	AuthorId       int64            `json:"authorId"`
	AuthorInitial  string           `json:"authorInitial"`
	Community      string           `json:"community"`
	CommunityColor string           `json:"communityColor"`
	Votes          int              `json:"votes"`
	MyVote         voting.Direction `json:"myVote"`
	CommentCount   int              `json:"commentCount"`
	Created        time.Time        `json:"createdAt"`
	Updated        time.Time        `json:"updatedAt"`
}

func (p *Post) View(myVote voting.Direction) *View {
	v := &View{
		Id:             p.Id,
		Title:          p.Title,
		Content:        p.Content,
		Community:      p.CommunityName,
		CommunityColor: p.CommunityTheme.CSSClass(),
		Votes:          p.Votes,
		MyVote:         myVote,
		CommentCount:   p.CommentCount,
		Created:        p.Created,
		Updated:        p.Updated,
	}
	if p.Author != nil {
		v.Author = p.Author.Username
		v.AuthorId = p.Author.Id
		v.AuthorInitial = p.Author.Initial()
	}
	return v
}

type CreateRequest struct {
	Title     string `json:"title" validate:"notblank,max=300"`
	Content   string `json:"content"`
	Community string `json:"community" validate:"notblank"`
}

type UpdateRequest struct {
	Title   string `json:"title" validate:"notblank,max=300"`
	Content string `json:"content"`
}
