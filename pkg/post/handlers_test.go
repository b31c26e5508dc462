package post

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"forum/pkg/common"
	"forum/pkg/community"
	"forum/pkg/sessions"
	"forum/pkg/user"
	"forum/pkg/voting"
)

func request(method, target, body string, vars map[string]string, u *user.User) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = mux.SetURLVars(req, vars)
	if u != nil {
		req = req.WithContext(sessions.WithUser(req.Context(), u))
	}
	return req
}

type handlerMocks struct {
	repo    *MockIPostRepo
	voter   *MockIVoter
	myVotes *MockIVoteLookup
}

func newHandler(ctrl *gomock.Controller) (*PostHandler, handlerMocks) {
	m := handlerMocks{
		repo:    NewMockIPostRepo(ctrl),
		voter:   NewMockIVoter(ctrl),
		myVotes: NewMockIVoteLookup(ctrl),
	}
	return NewPostHandler(m.repo, m.voter, m.myVotes), m
}

func TestPostHandlersRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ph, m := newHandler(ctrl)
	pike := &user.User{Id: 7, Username: "pike"}
	posts := []*Post{
		{Id: 2, Title: "second", Author: pike, CommunityName: "golang", CommunityTheme: community.Blue},
		{Id: 1, Title: "first", Author: pike, CommunityName: "golang", CommunityTheme: community.Blue},
	}

	t.Run("anonymous list", func(t *testing.T) {
		m.repo.EXPECT().List(gomock.Any(), common.Page{Number: 1, Size: 2}).Return(posts, 5, nil)
		m.myVotes.EXPECT().UserVotes(gomock.Any(), int64(0), []int64{2, 1}).Return(map[int64]voting.Direction{}, nil)

		w := httptest.NewRecorder()
		ph.List(w, request("GET", "/api/posts?page=1&size=2", "", nil, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"totalElements":5`)
		assert.Contains(t, body, `"myVote":null`)
		assert.Contains(t, body, `"communityColor":"bg-blue-500"`)
	})

	t.Run("list shows my votes", func(t *testing.T) {
		m.repo.EXPECT().List(gomock.Any(), common.Page{Number: 0, Size: common.DefaultPageSize}).Return(posts, 2, nil)
		m.myVotes.EXPECT().UserVotes(gomock.Any(), int64(7), []int64{2, 1}).
			Return(map[int64]voting.Direction{1: voting.Up}, nil)

		w := httptest.NewRecorder()
		ph.List(w, request("GET", "/api/posts", "", nil, pike))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"myVote":"UP"`)
	})

	t.Run("by community", func(t *testing.T) {
		m.repo.EXPECT().ByCommunity(gomock.Any(), "golang", gomock.Any()).Return([]*Post{}, 0, nil)
		m.myVotes.EXPECT().UserVotes(gomock.Any(), int64(0), []int64{}).Return(nil, nil)

		w := httptest.NewRecorder()
		ph.ByCommunity(w, request("GET", "/api/posts/c/golang", "", map[string]string{"community": "golang"}, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"content":[]`)
	})

	t.Run("get missing", func(t *testing.T) {
		m.repo.EXPECT().GetById(gomock.Any(), int64(9)).Return(nil, common.NotFoundf("post 9 not found"))

		w := httptest.NewRecorder()
		ph.Get(w, request("GET", "/api/posts/9", "", map[string]string{"post_id": "9"}, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("my posts need a user", func(t *testing.T) {
		w := httptest.NewRecorder()
		ph.Mine(w, request("GET", "/api/users/me/posts", "", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("saved posts", func(t *testing.T) {
		m.repo.EXPECT().SavedBy(gomock.Any(), int64(7), gomock.Any()).Return(posts[:1], 1, nil)
		m.myVotes.EXPECT().UserVotes(gomock.Any(), int64(7), []int64{2}).Return(nil, nil)

		w := httptest.NewRecorder()
		ph.Saved(w, request("GET", "/api/users/me/saved-posts", "", nil, pike))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"second"`)
	})
}

func TestPostHandlersWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ph, m := newHandler(ctrl)
	pike := &user.User{Id: 7, Username: "pike"}
	rob := &user.User{Id: 8, Username: "rob"}
	own := func() *Post {
		return &Post{Id: 3, Title: "old", Author: pike, CommunityName: "golang", CommunityTheme: community.Blue}
	}
	vars := map[string]string{"post_id": "3"}

	t.Run("create", func(t *testing.T) {
		m.repo.EXPECT().Add(gomock.Any(), &Post{Title: "hello", Content: "world", Author: pike}, "golang").
			Return(&Post{Id: 3, Title: "hello", Content: "world", Author: pike, CommunityName: "golang"}, nil)

		w := httptest.NewRecorder()
		ph.Add(w, request("POST", "/api/posts", `{"title":"hello","content":"world","community":"golang"}`, nil, pike))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"authorInitial":"p"`)
	})

	t.Run("create with blank title", func(t *testing.T) {
		w := httptest.NewRecorder()
		ph.Add(w, request("POST", "/api/posts", `{"title":" ","community":"golang"}`, nil, pike))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title must not be blank")
	})

	t.Run("create in unknown community", func(t *testing.T) {
		m.repo.EXPECT().Add(gomock.Any(), gomock.Any(), "nope").Return(nil, common.NotFoundf(`community "nope" not found`))

		w := httptest.NewRecorder()
		ph.Add(w, request("POST", "/api/posts", `{"title":"hi","community":"nope"}`, nil, pike))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update by author", func(t *testing.T) {
		m.repo.EXPECT().GetById(gomock.Any(), int64(3)).Return(own(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, p *Post) error {
			assert.Equal(t, "new", p.Title)
			return nil
		})
		m.myVotes.EXPECT().UserVotes(gomock.Any(), int64(7), []int64{3}).Return(nil, nil)

		w := httptest.NewRecorder()
		ph.Update(w, request("PUT", "/api/posts/3", `{"title":"new","content":"x"}`, vars, pike))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"new"`)
	})

	t.Run("update by someone else", func(t *testing.T) {
		m.repo.EXPECT().GetById(gomock.Any(), int64(3)).Return(own(), nil)

		w := httptest.NewRecorder()
		ph.Update(w, request("PUT", "/api/posts/3", `{"title":""}`, vars, rob))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete by author", func(t *testing.T) {
		m.repo.EXPECT().GetById(gomock.Any(), int64(3)).Return(own(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		w := httptest.NewRecorder()
		ph.Delete(w, request("DELETE", "/api/posts/3", "", vars, pike))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete by someone else", func(t *testing.T) {
		m.repo.EXPECT().GetById(gomock.Any(), int64(3)).Return(own(), nil)

		w := httptest.NewRecorder()
		ph.Delete(w, request("DELETE", "/api/posts/3", "", vars, rob))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("upvote returns the count", func(t *testing.T) {
		m.voter.EXPECT().Vote(gomock.Any(), int64(3), rob, voting.Up).Return(4, nil)

		w := httptest.NewRecorder()
		ph.Upvote(w, request("POST", "/api/posts/3/upvote", "", vars, rob))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "4", w.Body.String())
	})

	t.Run("downvote on missing post", func(t *testing.T) {
		m.voter.EXPECT().Vote(gomock.Any(), int64(3), rob, voting.Down).Return(0, common.NotFoundf("post 3 not found"))

		w := httptest.NewRecorder()
		ph.Downvote(w, request("POST", "/api/posts/3/downvote", "", vars, rob))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("vote needs a user", func(t *testing.T) {
		w := httptest.NewRecorder()
		ph.Upvote(w, request("POST", "/api/posts/3/upvote", "", vars, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("toggle saved", func(t *testing.T) {
		m.repo.EXPECT().ToggleSaved(gomock.Any(), int64(8), int64(3)).Return(true, nil)

		w := httptest.NewRecorder()
		ph.ToggleSaved(w, request("POST", "/api/users/me/saved-posts/3", "", vars, rob))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Body.String())
	})
}
