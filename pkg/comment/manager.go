package comment

//go:generate mockgen -source=manager.go -destination=mock_manager.go -package=comment

import (
	"context"
	"fmt"
	"time"

	"forum/pkg/authz"
	"forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/metrics"
	"forum/pkg/notification"
	"forum/pkg/user"
)

type (
	CommentStore interface {
		GetById(ctx context.Context, id int64) (*Comment, error)
		ListByPost(ctx context.Context, postId int64) ([]*Comment, error)
		Add(ctx context.Context, c *Comment) error
		UpdateContent(ctx context.Context, id int64, content string) (time.Time, error)
		DeleteTree(ctx context.Context, postId, rootId int64) (int, error)
	}

	// PostAuthors resolves a post to its author id, failing with
	// common.ErrNotFound for unknown posts.
	PostAuthors interface {
		AuthorOf(ctx context.Context, postId int64) (int64, error)
	}

	Notifier interface {
		Send(ctx context.Context, recipientId int64, actor *user.User, t notification.Type, content string)
	}

	Manager struct {
		Comments CommentStore
		Posts    PostAuthors
		Notifier Notifier
	}

	ContentRequest struct {
		Content string `json:"content" validate:"notblank,max=10000"`
	}
)

func NewManager(comments CommentStore, posts PostAuthors, notifier Notifier) *Manager {
	return &Manager{
		Comments: comments,
		Posts:    posts,
		Notifier: notifier,
	}
}

func validContent(content string) error {
	return common.Validate(&ContentRequest{Content: content})
}

func requireAuthor(author *user.User) error {
	if author == nil || author.Id == 0 {
		return common.NotFoundf("user not found")
	}
	return nil
}

// ListThread returns the post's top-level comments with their replies.
func (m *Manager) ListThread(ctx context.Context, postId int64) ([]*View, error) {
	if _, err := m.Posts.AuthorOf(ctx, postId); err != nil {
		return nil, err
	}
	comments, err := m.Comments.ListByPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	return BuildThread(comments), nil
}

func (m *Manager) CreateTopLevel(ctx context.Context, postId int64, author *user.User, content string) (*View, error) {
	if err := requireAuthor(author); err != nil {
		return nil, err
	}
	if err := validContent(content); err != nil {
		return nil, err
	}
	postAuthor, err := m.Posts.AuthorOf(ctx, postId)
	if err != nil {
		return nil, err
	}

	c := &Comment{PostId: postId, Author: author, Content: content}
	if err := m.Comments.Add(ctx, c); err != nil {
		return nil, err
	}
	metrics.CommentOps.WithLabelValues("create").Inc()
	logger.Log(ctx).Debugw("comment created", "comment", c.Id, "post", postId, "author", author.Id)

	m.Notifier.Send(ctx, postAuthor, author, notification.CommentOnPost, content)
	return c.View(), nil
}

// CreateReply answers parentId. The reply always belongs to the parent's post.
func (m *Manager) CreateReply(ctx context.Context, parentId int64, author *user.User, content string) (*View, error) {
	if err := requireAuthor(author); err != nil {
		return nil, err
	}
	if err := validContent(content); err != nil {
		return nil, err
	}
	parent, err := m.Comments.GetById(ctx, parentId)
	if err != nil {
		return nil, err
	}

	c := &Comment{PostId: parent.PostId, ParentId: &parent.Id, Author: author, Content: content}
	if err := m.Comments.Add(ctx, c); err != nil {
		return nil, err
	}
	metrics.CommentOps.WithLabelValues("reply").Inc()
	logger.Log(ctx).Debugw("reply created", "comment", c.Id, "parent", parentId, "post", c.PostId, "author", author.Id)

	if parent.Author != nil {
		m.Notifier.Send(ctx, parent.Author.Id, author, notification.ReplyToComment, content)
	}
	return c.View(), nil
}

// UpdateContent replaces the text of the actor's own comment. Replies,
// position and creation time stay as they were.
func (m *Manager) UpdateContent(ctx context.Context, id int64, actor *user.User, content string) (*View, error) {
	c, err := m.ownComment(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := validContent(content); err != nil {
		return nil, err
	}

	updated, err := m.Comments.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	c.Content = content
	c.Updated = updated
	metrics.CommentOps.WithLabelValues("update").Inc()
	return c.View(), nil
}

// Delete removes the actor's own comment together with every reply below it.
func (m *Manager) Delete(ctx context.Context, id int64, actor *user.User) error {
	c, err := m.ownComment(ctx, id, actor)
	if err != nil {
		return err
	}

	n, err := m.Comments.DeleteTree(ctx, c.PostId, c.Id)
	if err != nil {
		return err
	}
	metrics.CommentOps.WithLabelValues("delete").Inc()
	metrics.CommentsDeleted.Add(float64(n))
	logger.Log(ctx).Debugw("comment tree deleted", "comment", id, "post", c.PostId, "removed", n)
	return nil
}

func (m *Manager) ownComment(ctx context.Context, id int64, actor *user.User) (*Comment, error) {
	c, err := m.Comments.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	var authorId int64
	if c.Author != nil {
		authorId = c.Author.Id
	}
	if err := authz.RequireOwner(actor, authorId, "comment"); err != nil {
		return nil, fmt.Errorf("comment %d: %w", id, err)
	}
	return c, nil
}
