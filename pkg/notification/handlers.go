package notification

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=notification

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	. "forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/sessions"
)

type INotificationRepo interface {
	ListByRecipient(context.Context, int64) ([]*Notification, error)
	MarkRead(context.Context, string, int64) error
	MarkAllRead(context.Context, int64) (int64, error)
}

type NotificationHandler struct {
	Repo INotificationRepo
	now  func() time.Time
}

func NewNotificationHandler(repo INotificationRepo) *NotificationHandler {
	return &NotificationHandler{
		Repo: repo,
		now:  time.Now,
	}
}

func (nh *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	items, err := nh.Repo.ListByRecipient(r.Context(), me.Id)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	now := nh.now()
	views := make([]*View, 0, len(items))
	for _, n := range items {
		views = append(views, n.View(now))
	}
	WriteJSON(w, http.StatusOK, views)
}

func (nh *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	id := mux.Vars(r)["notification_id"]
	if err := nh.Repo.MarkRead(r.Context(), id, me.Id); err != nil {
		WriteError(w, r, err)
		return
	}
	WriteMsg(w, "success", http.StatusOK)
}

func (nh *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	n, err := nh.Repo.MarkAllRead(r.Context(), me.Id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	logger.Log(r.Context()).Debugf("notification: %d marked read for user %d", n, me.Id)
	WriteMsg(w, "success", http.StatusOK)
}
