package community

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
)

var communityCols = []string{"id", "name", "description", "color_theme", "creator_id", "created_at"}

func TestRepoAdd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommunityRepo(db)
	ctx := context.Background()
	now := time.Now()
	insert := regexp.QuoteMeta("INSERT INTO communities(name, description, color_theme, creator_id)")

	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery(insert).WithArgs("golang", "gophers", "BLUE", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

		c := &Community{Name: "golang", Description: "gophers", ColorTheme: Blue, CreatorId: 1}
		require.NoError(t, repo.Add(ctx, c))
		assert.Equal(t, int64(5), c.Id)
		assert.Equal(t, "bg-blue-500", c.Color)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectQuery(insert).WithArgs("golang", "", "RED", 1).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Add(ctx, &Community{Name: "golang", ColorTheme: Red, CreatorId: 1})
		assert.ErrorIs(t, err, common.ErrConflict)
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations unfulfilled: %s", err)
	}
}

func TestRepoQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommunityRepo(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("get all", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM communities c ORDER BY c.id")).
			WillReturnRows(sqlmock.NewRows(communityCols).
				AddRow(1, "golang", "", "BLUE", 1, now).
				AddRow(2, "rust", "", "ORANGE", 2, now))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, Orange, all[1].ColorTheme)
		assert.Equal(t, "bg-orange-500", all[1].Color)
	})

	t.Run("get all empty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM communities c ORDER BY c.id")).
			WillReturnRows(sqlmock.NewRows(communityCols))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("get by name", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.name = $1")).WithArgs("golang").
			WillReturnRows(sqlmock.NewRows(communityCols).AddRow(1, "golang", "gophers", "BLUE", 1, now))

		c, err := repo.GetByName(ctx, "golang")
		require.NoError(t, err)
		assert.Equal(t, "gophers", c.Description)
	})

	t.Run("missing name", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.name = $1")).WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(communityCols))

		_, err := repo.GetByName(ctx, "nope")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("joined", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN user_communities uc ON uc.community_id = c.id WHERE uc.user_id = $1")).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(communityCols).AddRow(1, "golang", "", "BLUE", 1, now))

		joined, err := repo.Joined(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, joined, 1)
	})

	t.Run("db error", func(t *testing.T) {
		expectedErr := fmt.Errorf("mock_db_error")
		mock.ExpectQuery(regexp.QuoteMeta("FROM communities c ORDER BY c.id")).WillReturnError(expectedErr)

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, expectedErr)
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations unfulfilled: %s", err)
	}
}

func TestRepoMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()
	repo := NewCommunityRepo(db)
	ctx := context.Background()
	join := regexp.QuoteMeta("INSERT INTO user_communities(user_id, community_id) VALUES($1, $2)")
	leave := regexp.QuoteMeta("DELETE FROM user_communities WHERE user_id = $1 AND community_id = $2")

	t.Run("join", func(t *testing.T) {
		mock.ExpectExec(join).WithArgs(3, 1).WillReturnResult(sqlmock.NewResult(1, 1))
		assert.NoError(t, repo.Join(ctx, 3, 1))
	})

	t.Run("join twice", func(t *testing.T) {
		mock.ExpectExec(join).WithArgs(3, 1).WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Join(ctx, 3, 1), common.ErrConflict)
	})

	t.Run("join vanished community", func(t *testing.T) {
		mock.ExpectExec(join).WithArgs(3, 9).WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Join(ctx, 3, 9), common.ErrNotFound)
	})

	t.Run("leave", func(t *testing.T) {
		mock.ExpectExec(leave).WithArgs(3, 1).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.Leave(ctx, 3, 1))
	})

	t.Run("leave when not joined", func(t *testing.T) {
		mock.ExpectExec(leave).WithArgs(3, 1).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Leave(ctx, 3, 1), common.ErrNotFound)
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations unfulfilled: %s", err)
	}
}
