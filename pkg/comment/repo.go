package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"forum/pkg/common"
	"forum/pkg/storage"
	"forum/pkg/user"
)

const selectComments = `SELECT c.id, c.post_id, c.parent_id, c.content, c.votes, c.created_at, c.updated_at,
	u.id, u.username
FROM comments c
JOIN users u ON u.id = c.user_id`

type Repo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner) (*Comment, error) {
	var (
		c      = &Comment{Author: &user.User{}}
		parent sql.NullInt64
	)
	err := row.Scan(&c.Id, &c.PostId, &parent, &c.Content, &c.Votes, &c.Created, &c.Updated,
		&c.Author.Id, &c.Author.Username)
	if err != nil {
		return nil, err
	}
	if parent.Valid {
		p := parent.Int64
		c.ParentId = &p
	}
	return c, nil
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx, selectComments+" WHERE c.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFoundf("comment %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("comment/repo: get %d: %w", id, err)
	}
	return c, nil
}

// ListByPost returns every comment of the post in creation order.
func (r *Repo) ListByPost(ctx context.Context, postId int64) ([]*Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		selectComments+" WHERE c.post_id = $1 ORDER BY c.created_at, c.id", postId)
	if err != nil {
		return nil, fmt.Errorf("comment/repo: list post %d: %w", postId, err)
	}
	defer rows.Close()

	comments := []*Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("comment/repo: could not scan row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comment/repo: rows: %w", err)
	}
	return comments, nil
}

// Add stores c and fills in its id and timestamps.
func (r *Repo) Add(ctx context.Context, c *Comment) error {
	var parent sql.NullInt64
	if c.ParentId != nil {
		parent = sql.NullInt64{Int64: *c.ParentId, Valid: true}
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments(content, user_id, post_id, parent_id) VALUES($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		c.Content, c.Author.Id, c.PostId, parent).
		Scan(&c.Id, &c.Created, &c.Updated)
	if storage.IsForeignKeyViolation(err) {
		// post, parent or author vanished meanwhile
		return common.NotFoundf("post %d or its comment no longer exists", c.PostId)
	}
	if err != nil {
		return fmt.Errorf("comment/repo: comment wasn't added: %w", err)
	}
	return nil
}

// UpdateContent replaces the text in place and returns the new updated_at.
func (r *Repo) UpdateContent(ctx context.Context, id int64, content string) (time.Time, error) {
	var updated time.Time
	err := r.db.QueryRowContext(ctx,
		"UPDATE comments SET content = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at",
		content, id).Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, common.NotFoundf("comment %d not found", id)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("comment/repo: update %d: %w", id, err)
	}
	return updated, nil
}

// DeleteTree removes the comment and all of its replies as one batch.
// The post's comments are locked first, so a reply cannot be attached to a
// comment of the batch before the delete commits.
func (r *Repo) DeleteTree(ctx context.Context, postId, rootId int64) (int, error) {
	var deleted int
	err := storage.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT id, parent_id FROM comments WHERE post_id = $1 FOR UPDATE", postId)
		if err != nil {
			return fmt.Errorf("comment/repo: lock post %d comments: %w", postId, err)
		}
		comments := []*Comment{}
		found := false
		for rows.Next() {
			var (
				c      = &Comment{}
				parent sql.NullInt64
			)
			if err := rows.Scan(&c.Id, &parent); err != nil {
				rows.Close()
				return fmt.Errorf("comment/repo: could not scan row: %w", err)
			}
			if parent.Valid {
				p := parent.Int64
				c.ParentId = &p
			}
			found = found || c.Id == rootId
			comments = append(comments, c)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("comment/repo: rows: %w", err)
		}
		if !found {
			return common.NotFoundf("comment %d not found", rootId)
		}

		ids := CollectSubtree(rootId, comments)
		args := make([]interface{}, len(ids))
		for i, id := range ids {
			args[i] = id
		}
		res, err := tx.ExecContext(ctx,
			"DELETE FROM comments WHERE id IN ("+storage.Placeholders(1, len(ids))+")", args...)
		if err != nil {
			return fmt.Errorf("comment/repo: delete tree %d: %w", rootId, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("comment/repo: delete tree %d: %w", rootId, err)
		}
		if int(n) != len(ids) {
			return fmt.Errorf("comment/repo: delete tree %d: removed %d of %d comments", rootId, n, len(ids))
		}
		deleted = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
