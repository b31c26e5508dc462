package community

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=community

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	. "forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/sessions"
)

type ICommunityRepo interface {
	Add(context.Context, *Community) error
	GetAll(context.Context) ([]*Community, error)
	GetByName(context.Context, string) (*Community, error)
	Joined(context.Context, int64) ([]*Community, error)
	Join(ctx context.Context, userId, communityId int64) error
	Leave(ctx context.Context, userId, communityId int64) error
}

type CommunityHandler struct {
	Repo ICommunityRepo
}

func NewCommunityHandler(repo ICommunityRepo) *CommunityHandler {
	return &CommunityHandler{Repo: repo}
}

func (ch *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	creator, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	req := new(CreateRequest)
	if err := ParseReqBody(r.Body, req); err != nil {
		WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}
	req.Normalize()
	if err := Validate(req); err != nil {
		WriteError(w, r, err)
		return
	}

	c := &Community{
		Name:        req.Name,
		Description: req.Description,
		ColorTheme:  ColorTheme(req.ColorTheme),
		CreatorId:   creator.Id,
	}
	if err := ch.Repo.Add(r.Context(), c); err != nil {
		WriteError(w, r, err)
		return
	}
	logger.Log(r.Context()).Infof("community %q created by user %d", c.Name, creator.Id)
	WriteJSON(w, http.StatusCreated, c)
}

func (ch *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := ch.Repo.GetAll(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, all)
}

func (ch *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := ch.Repo.GetByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, c)
}

func (ch *CommunityHandler) Mine(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	joined, err := ch.Repo.Joined(r.Context(), me.Id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, joined)
}

func (ch *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	ch.membership(w, r, ch.Repo.Join, http.StatusOK)
}

func (ch *CommunityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	ch.membership(w, r, ch.Repo.Leave, http.StatusNoContent)
}

func (ch *CommunityHandler) membership(w http.ResponseWriter, r *http.Request,
	change func(ctx context.Context, userId, communityId int64) error, code int) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	c, err := ch.Repo.GetByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := change(r.Context(), me.Id, c.Id); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(code)
}
