package community

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forum/pkg/common"
	"forum/pkg/storage"
)

const selectCommunities = "SELECT c.id, c.name, c.description, c.color_theme, c.creator_id, c.created_at FROM communities c"

type Repo struct {
	db *sql.DB
}

func NewCommunityRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCommunity(row rowScanner) (*Community, error) {
	c := new(Community)
	if err := row.Scan(&c.Id, &c.Name, &c.Description, &c.ColorTheme, &c.CreatorId, &c.Created); err != nil {
		return nil, err
	}
	c.Color = c.ColorTheme.CSSClass()
	return c, nil
}

func (r *Repo) Add(ctx context.Context, c *Community) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO communities(name, description, color_theme, creator_id) VALUES($1, $2, $3, $4)
		RETURNING id, created_at`,
		c.Name, c.Description, string(c.ColorTheme), c.CreatorId).
		Scan(&c.Id, &c.Created)
	if storage.IsUniqueViolation(err) {
		return common.Conflictf("community %q already exists", c.Name)
	}
	if err != nil {
		return fmt.Errorf("community/repo: community wasn't added: %w", err)
	}
	c.Color = c.ColorTheme.CSSClass()
	return nil
}

func (r *Repo) GetAll(ctx context.Context) ([]*Community, error) {
	return r.list(ctx, selectCommunities+" ORDER BY c.id")
}

func (r *Repo) GetByName(ctx context.Context, name string) (*Community, error) {
	c, err := scanCommunity(r.db.QueryRowContext(ctx, selectCommunities+" WHERE c.name = $1", name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFoundf("community %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("community/repo: get %q: %w", name, err)
	}
	return c, nil
}

// Joined returns the communities the user is a member of, in joining order.
func (r *Repo) Joined(ctx context.Context, userId int64) ([]*Community, error) {
	return r.list(ctx,
		selectCommunities+" JOIN user_communities uc ON uc.community_id = c.id WHERE uc.user_id = $1 ORDER BY uc.id",
		userId)
}

func (r *Repo) Join(ctx context.Context, userId, communityId int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO user_communities(user_id, community_id) VALUES($1, $2)", userId, communityId)
	switch {
	case storage.IsUniqueViolation(err):
		return common.Conflictf("already joined this community")
	case storage.IsForeignKeyViolation(err):
		return common.NotFoundf("community %d not found", communityId)
	case err != nil:
		return fmt.Errorf("community/repo: join: %w", err)
	}
	return nil
}

func (r *Repo) Leave(ctx context.Context, userId, communityId int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM user_communities WHERE user_id = $1 AND community_id = $2", userId, communityId)
	if err != nil {
		return fmt.Errorf("community/repo: leave: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("community/repo: leave: %w", err)
	}
	if n == 0 {
		return common.NotFoundf("not joined this community")
	}
	return nil
}

func (r *Repo) list(ctx context.Context, query string, args ...interface{}) ([]*Community, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("community/repo: list: %w", err)
	}
	defer rows.Close()

	res := []*Community{}
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, fmt.Errorf("community/repo: could not scan row: %w", err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("community/repo: rows: %w", err)
	}
	return res, nil
}
