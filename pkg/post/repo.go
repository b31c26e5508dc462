package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forum/pkg/common"
	"forum/pkg/storage"
	"forum/pkg/user"
)

const (
	selectPosts = `SELECT p.id, p.title, p.content, p.votes, p.created_at, p.updated_at,
		u.id, u.username, c.id, c.name, c.color_theme,
		(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id)
	FROM posts p
	JOIN users u ON u.id = p.user_id
	JOIN communities c ON c.id = p.community_id`

	countPosts = `SELECT COUNT(*) FROM posts p JOIN communities c ON c.id = p.community_id`
)

type Repo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*Post, error) {
	p := &Post{Author: new(user.User)}
	err := row.Scan(&p.Id, &p.Title, &p.Content, &p.Votes, &p.Created, &p.Updated,
		&p.Author.Id, &p.Author.Username, &p.CommunityId, &p.CommunityName, &p.CommunityTheme,
		&p.CommentCount)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Add stores the post in the community with the given name and returns it
// as it reads back from the database.
func (r *Repo) Add(ctx context.Context, p *Post, communityName string) (*Post, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO posts(title, content, user_id, community_id)
		SELECT $1, $2, $3, c.id FROM communities c WHERE c.name = $4
		RETURNING id`,
		p.Title, p.Content, p.Author.Id, communityName).
		Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, common.NotFoundf("community %q not found", communityName)
	case storage.IsForeignKeyViolation(err):
		return nil, common.NotFoundf("user %d not found", p.Author.Id)
	case err != nil:
		return nil, fmt.Errorf("post/repo: post wasn't added: %w", err)
	}
	return r.GetById(ctx, id)
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, selectPosts+" WHERE p.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFoundf("post %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: get post %d: %w", id, err)
	}
	return p, nil
}

// AuthorOf returns the id of the post's author.
func (r *Repo) AuthorOf(ctx context.Context, postId int64) (int64, error) {
	var authorId int64
	err := r.db.QueryRowContext(ctx, "SELECT user_id FROM posts WHERE id = $1", postId).Scan(&authorId)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, common.NotFoundf("post %d not found", postId)
	}
	if err != nil {
		return 0, fmt.Errorf("post/repo: author of %d: %w", postId, err)
	}
	return authorId, nil
}

func (r *Repo) Update(ctx context.Context, p *Post) error {
	err := r.db.QueryRowContext(ctx,
		"UPDATE posts SET title = $1, content = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at",
		p.Title, p.Content, p.Id).
		Scan(&p.Updated)
	if errors.Is(err, sql.ErrNoRows) {
		return common.NotFoundf("post %d not found", p.Id)
	}
	if err != nil {
		return fmt.Errorf("post/repo: failed updating post %d: %w", p.Id, err)
	}
	return nil
}

// Delete removes the post. Its votes, comments and saves go with it by cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post %d: %w", id, err)
	}
	if n == 0 {
		return common.NotFoundf("post %d not found", id)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, page common.Page) ([]*Post, int, error) {
	return r.page(ctx, "", "ORDER BY p.created_at DESC, p.id DESC", page)
}

func (r *Repo) ByCommunity(ctx context.Context, name string, page common.Page) ([]*Post, int, error) {
	return r.page(ctx, "WHERE c.name = $1", "ORDER BY p.created_at DESC, p.id DESC", page, name)
}

func (r *Repo) ByAuthor(ctx context.Context, userId int64, page common.Page) ([]*Post, int, error) {
	return r.page(ctx, "WHERE p.user_id = $1", "ORDER BY p.created_at DESC, p.id DESC", page, userId)
}

// SavedBy lists the posts the user saved, most recently saved first.
func (r *Repo) SavedBy(ctx context.Context, userId int64, page common.Page) ([]*Post, int, error) {
	return r.page(ctx,
		"JOIN saved_posts sp ON sp.post_id = p.id WHERE sp.user_id = $1",
		"ORDER BY sp.id DESC", page, userId)
}

// ToggleSaved saves the post for the user or removes an existing save.
// It reports whether the post is saved afterwards.
func (r *Repo) ToggleSaved(ctx context.Context, userId, postId int64) (bool, error) {
	saved := false
	err := storage.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"DELETE FROM saved_posts WHERE user_id = $1 AND post_id = $2", userId, postId)
		if err != nil {
			return fmt.Errorf("post/repo: unsave: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("post/repo: unsave: %w", err)
		}
		if n > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO saved_posts(user_id, post_id) VALUES($1, $2)", userId, postId)
		if storage.IsForeignKeyViolation(err) {
			return common.NotFoundf("post %d not found", postId)
		}
		if err != nil {
			return fmt.Errorf("post/repo: save: %w", err)
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

// page runs one filtered, ordered listing together with its total count.
// Filter args take $1.. and the limit/offset follow them.
func (r *Repo) page(ctx context.Context, filter, order string, page common.Page, args ...interface{}) ([]*Post, int, error) {
	var total int
	countQuery := countPosts
	if filter != "" {
		countQuery += " " + filter
	}
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("post/repo: count posts: %w", err)
	}

	query := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d", selectPosts, filter, order, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("post/repo: failed finding posts: %w", err)
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("post/repo: could not scan row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("post/repo: rows: %w", err)
	}
	return posts, total, nil
}
