package comment

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=comment

import (
	"context"
	"net/http"

	. "forum/pkg/common"
	"forum/pkg/sessions"
	"forum/pkg/user"
)

type ICommentManager interface {
	ListThread(ctx context.Context, postId int64) ([]*View, error)
	CreateTopLevel(ctx context.Context, postId int64, author *user.User, content string) (*View, error)
	CreateReply(ctx context.Context, parentId int64, author *user.User, content string) (*View, error)
	UpdateContent(ctx context.Context, id int64, actor *user.User, content string) (*View, error)
	Delete(ctx context.Context, id int64, actor *user.User) error
}

type CommentHandler struct {
	Manager ICommentManager
}

func NewCommentHandler(m ICommentManager) *CommentHandler {
	return &CommentHandler{Manager: m}
}

func (ch *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postId, err := IdVar(r, "post_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	thread, err := ch.Manager.ListThread(r.Context(), postId)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, thread)
}

func (ch *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	ch.create(w, r, "post_id", ch.Manager.CreateTopLevel)
}

func (ch *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	ch.create(w, r, "comment_id", ch.Manager.CreateReply)
}

type createFunc func(context.Context, int64, *user.User, string) (*View, error)

func (ch *CommentHandler) create(w http.ResponseWriter, r *http.Request, idVar string, create createFunc) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := IdVar(r, idVar)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	req := new(ContentRequest)
	if err := ParseReqBody(r.Body, req); err != nil {
		WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	view, err := create(r.Context(), id, author, req.Content)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, view)
}

func (ch *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := IdVar(r, "comment_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	req := new(ContentRequest)
	if err := ParseReqBody(r.Body, req); err != nil {
		WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	view, err := ch.Manager.UpdateContent(r.Context(), id, actor, req.Content)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

func (ch *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	id, err := IdVar(r, "comment_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	if err := ch.Manager.Delete(r.Context(), id, actor); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
