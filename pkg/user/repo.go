package user

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/storage"
)

var ErrBadPassword = errors.New("user/repo: password is invalid")

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) Add(ctx context.Context, u *User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users(username, password) VALUES($1, $2) RETURNING id", u.Username, u.Password).
		Scan(&id)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return 0, common.Conflictf("user %q already exists", u.Username)
		}
		return 0, fmt.Errorf("user/repo: user wasn't added: %w", err)
	}
	if id == 0 {
		return 0, errors.New("user/repo: user wasn't added, returned id is 0")
	}
	return id, nil
}

func (r *UserRepo) GetByUsernameAndPass(ctx context.Context, uname string, pass string) (*User, error) {
	u, err := r.GetByUsername(ctx, uname)
	if err != nil {
		return nil, err
	}
	// User found by username, now check if passwords are the same
	if len(u.Password) < 8 {
		return nil, ErrBadPassword
	}
	salt := string(u.Password[0:8])
	if !bytes.Equal(common.HashPass(pass, salt), u.Password) {
		return nil, ErrBadPassword
	}
	return u, nil
}

// GetByUsername resolves an identity. Unknown usernames are ErrNotFound.
func (r *UserRepo) GetByUsername(ctx context.Context, uname string) (*User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, username, password FROM users where username=$1", uname)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFoundf("user %q not found", uname)
		}
		return nil, fmt.Errorf("user/repo: row scan failed: %w", err)
	}
	return u, nil
}

func (r *UserRepo) UserExists(ctx context.Context, uname string) bool {
	row := r.db.QueryRowContext(ctx, "SELECT id FROM users where username=$1", uname)
	var id int64
	if err := row.Scan(&id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log(ctx).Warnf("user/repo: could not scan row: %v", err)
		}
		return false
	}
	return true
}

func (r *UserRepo) GetById(ctx context.Context, uid int64) (*User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, username FROM users where id=$1", uid)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFoundf("user %d not found", uid)
		}
		return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

// Returns all users. Used only for seeding the DB.
func (r *UserRepo) GetAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, username, password FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed executing query for getting all users: %w", err)
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u := new(User)
		err := rows.Scan(&u.Id, &u.Username, &u.Password)
		if err != nil {
			return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user/repo: rows: %w", err)
	}

	return users, nil
}
