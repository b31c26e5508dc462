package notification

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"forum/pkg/common"
	"forum/pkg/sessions"
	"forum/pkg/user"
)

func request(method string, vars map[string]string, u *user.User) *http.Request {
	req := httptest.NewRequest(method, "/api/notifications", nil)
	req = mux.SetURLVars(req, vars)
	if u != nil {
		req = req.WithContext(sessions.WithUser(req.Context(), u))
	}
	return req
}

func TestNotificationHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockINotificationRepo(ctrl)
	nh := NewNotificationHandler(repo)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	nh.now = func() time.Time { return now }
	pike := &user.User{Id: 1, Username: "pike"}

	t.Run("list", func(t *testing.T) {
		repo.EXPECT().ListByRecipient(gomock.Any(), int64(1)).Return([]*Notification{{
			Id:          "n1",
			RecipientId: 1,
			ActorId:     2,
			ActorName:   "rob",
			Type:        ReplyToComment,
			Content:     "agreed",
			Created:     now.Add(-5 * time.Minute),
		}}, nil)

		w := httptest.NewRecorder()
		nh.List(w, request("GET", nil, pike))
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"action":"replied to your comment"`)
		assert.Contains(t, body, `"time":"5m ago"`)
		assert.Contains(t, body, `"userInitial":"r"`)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		repo.EXPECT().ListByRecipient(gomock.Any(), int64(1)).Return(nil, nil)

		w := httptest.NewRecorder()
		nh.List(w, request("GET", nil, pike))
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("list needs a user", func(t *testing.T) {
		w := httptest.NewRecorder()
		nh.List(w, request("GET", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("mark read", func(t *testing.T) {
		repo.EXPECT().MarkRead(gomock.Any(), "n1", int64(1)).Return(nil)

		w := httptest.NewRecorder()
		nh.MarkRead(w, request("POST", map[string]string{"notification_id": "n1"}, pike))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mark read of a foreign notification", func(t *testing.T) {
		repo.EXPECT().MarkRead(gomock.Any(), "n9", int64(1)).Return(common.NotFoundf("notification n9 not found"))

		w := httptest.NewRecorder()
		nh.MarkRead(w, request("POST", map[string]string{"notification_id": "n9"}, pike))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("mark all read", func(t *testing.T) {
		repo.EXPECT().MarkAllRead(gomock.Any(), int64(1)).Return(int64(3), nil)

		w := httptest.NewRecorder()
		nh.MarkAllRead(w, request("POST", nil, pike))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mark all read failure", func(t *testing.T) {
		repo.EXPECT().MarkAllRead(gomock.Any(), int64(1)).Return(int64(0), fmt.Errorf("mongo down"))

		w := httptest.NewRecorder()
		nh.MarkAllRead(w, request("POST", nil, pike))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "mongo down")
	})
}
