package comment

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forum/pkg/common"
	"forum/pkg/user"
)

var commentCols = []string{"id", "post_id", "parent_id", "content", "votes", "created_at", "updated_at", "id", "username"}

func TestRepoGetAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("get reply", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).WithArgs(2).
			WillReturnRows(sqlmock.NewRows(commentCols).AddRow(2, 1, 1, "hi", 0, now, now, 7, "pike"))

		c, err := repo.GetById(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, c.ParentId)
		assert.Equal(t, int64(1), *c.ParentId)
		assert.Equal(t, &user.User{Id: 7, Username: "pike"}, c.Author)
		assert.False(t, c.IsTopLevel())
	})

	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).WithArgs(3).
			WillReturnRows(sqlmock.NewRows(commentCols))

		_, err := repo.GetById(ctx, 3)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("list by post", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.post_id = $1 ORDER BY c.created_at, c.id")).WithArgs(1).
			WillReturnRows(sqlmock.NewRows(commentCols).
				AddRow(1, 1, nil, "top", 0, now, now, 7, "pike").
				AddRow(2, 1, 1, "reply", 0, now, now, 8, "rob"))

		comments, err := repo.ListByPost(ctx, 1)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.True(t, comments[0].IsTopLevel())
		assert.Equal(t, "rob", comments[1].Author.Username)
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations unfulfilled: %s", err)
	}
}

func TestRepoAddAndUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db)
	ctx := context.Background()
	now := time.Now()
	insert := regexp.QuoteMeta("INSERT INTO comments(content, user_id, post_id, parent_id)")

	t.Run("add reply", func(t *testing.T) {
		c := &Comment{PostId: 1, ParentId: ptr(4), Author: &user.User{Id: 7}, Content: "hi"}
		mock.ExpectQuery(insert).WithArgs("hi", 7, 1, 4).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))

		require.NoError(t, repo.Add(ctx, c))
		assert.Equal(t, int64(5), c.Id)
		assert.Equal(t, now, c.Created)
	})

	t.Run("add to vanished post", func(t *testing.T) {
		c := &Comment{PostId: 1, Author: &user.User{Id: 7}, Content: "hi"}
		mock.ExpectQuery(insert).WithArgs("hi", 7, 1, nil).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, repo.Add(ctx, c), common.ErrNotFound)
	})

	t.Run("update content", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET content = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at")).
			WithArgs("new", 5).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		updated, err := repo.UpdateContent(ctx, 5, "new")
		require.NoError(t, err)
		assert.Equal(t, now, updated)
	})

	t.Run("update missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET content")).
			WithArgs("new", 6).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		_, err := repo.UpdateContent(ctx, 6, "new")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations unfulfilled: %s", err)
	}
}

func TestRepoDeleteTree(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommentRepo(db)
	ctx := context.Background()
	lock := regexp.QuoteMeta("SELECT id, parent_id FROM comments WHERE post_id = $1 FOR UPDATE")
	del := regexp.QuoteMeta("DELETE FROM comments WHERE id IN ($1, $2, $3)")

	// C1 <- C2 <- C3, and C4 unrelated
	treeRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "parent_id"}).
			AddRow(1, nil).
			AddRow(2, 1).
			AddRow(3, 2).
			AddRow(4, nil)
	}

	t.Run("removes the comment and all descendants in one batch", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(1).WillReturnRows(treeRows())
		mock.ExpectExec(del).WithArgs(1, 2, 3).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		n, err := repo.DeleteTree(ctx, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(1).WillReturnRows(treeRows())
		mock.ExpectRollback()

		_, err := repo.DeleteTree(ctx, 1, 9)
		assert.ErrorIs(t, err, common.ErrNotFound)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
		}
	})

	t.Run("partial delete rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(1).WillReturnRows(treeRows())
		mock.ExpectExec(del).WithArgs(1, 2, 3).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectRollback()

		_, err := repo.DeleteTree(ctx, 1, 1)
		assert.Error(t, err)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
		}
	})

	t.Run("delete failure rolls back", func(t *testing.T) {
		expectedErr := fmt.Errorf("mock_db_error")
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs(1).WillReturnRows(treeRows())
		mock.ExpectExec(del).WithArgs(1, 2, 3).WillReturnError(expectedErr)
		mock.ExpectRollback()

		_, err := repo.DeleteTree(ctx, 1, 1)
		assert.ErrorIs(t, err, expectedErr)
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations unfulfilled: %s", err)
		}
	})
}
