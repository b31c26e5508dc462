package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forum/pkg/common"
	"forum/pkg/storage"
)

type Repo struct {
	db *sql.DB
}

func NewVoteRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Apply runs the vote transition in one transaction:
// - lock the post row, so votes on one post are serialized and no counter update is lost,
// - read the user's current vote,
// - write the vote record (insert, update or delete),
// - shift the post counter by the transition delta.
//
// It returns the counter value after commit.
func (r *Repo) Apply(ctx context.Context, postId, userId int64, requested Direction) (int, Outcome, error) {
	var (
		votes int
		out   Outcome
	)

	err := storage.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, "SELECT votes FROM posts WHERE id = $1 FOR UPDATE", postId).Scan(&votes)
		if errors.Is(err, sql.ErrNoRows) {
			return common.NotFoundf("post %d not found", postId)
		}
		if err != nil {
			return fmt.Errorf("voting/repo: lock post: %w", err)
		}

		var voteId int64
		current := None
		err = tx.QueryRowContext(ctx,
			"SELECT id, direction FROM post_votes WHERE user_id = $1 AND post_id = $2", userId, postId).
			Scan(&voteId, &current)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("voting/repo: read vote: %w", err)
		}

		out = Transition(current, requested)
		switch out.Kind {
		case Created:
			_, err = tx.ExecContext(ctx,
				"INSERT INTO post_votes(user_id, post_id, direction) VALUES($1, $2, $3)",
				userId, postId, out.Next.String())
		case Switched:
			_, err = tx.ExecContext(ctx,
				"UPDATE post_votes SET direction = $1, updated_at = NOW() WHERE id = $2",
				out.Next.String(), voteId)
		case ToggledOff:
			_, err = tx.ExecContext(ctx, "DELETE FROM post_votes WHERE id = $1", voteId)
		}
		if err != nil {
			switch {
			case storage.IsForeignKeyViolation(err):
				return common.NotFoundf("user %d not found", userId)
			case storage.IsUniqueViolation(err):
				return common.Conflictf("vote on post %d is already being changed", postId)
			}
			return fmt.Errorf("voting/repo: %s vote: %w", out.Kind, err)
		}

		err = tx.QueryRowContext(ctx,
			"UPDATE posts SET votes = votes + $1 WHERE id = $2 RETURNING votes", out.Delta, postId).
			Scan(&votes)
		if err != nil {
			return fmt.Errorf("voting/repo: update counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, Outcome{}, err
	}
	return votes, out, nil
}

// UserVotes returns the user's current direction for each of the given posts
// they have voted on.
func (r *Repo) UserVotes(ctx context.Context, userId int64, postIds []int64) (map[int64]Direction, error) {
	res := make(map[int64]Direction, len(postIds))
	if userId == 0 || len(postIds) == 0 {
		return res, nil
	}

	args := make([]interface{}, 0, len(postIds)+1)
	args = append(args, userId)
	for _, id := range postIds {
		args = append(args, id)
	}
	query := "SELECT post_id, direction FROM post_votes WHERE user_id = $1 AND post_id IN (" +
		storage.Placeholders(2, len(postIds)) + ")"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("voting/repo: user votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postId int64
			d      Direction
		)
		if err := rows.Scan(&postId, &d); err != nil {
			return nil, fmt.Errorf("voting/repo: could not scan row: %w", err)
		}
		res[postId] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("voting/repo: rows: %w", err)
	}
	return res, nil
}
