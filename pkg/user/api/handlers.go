package api

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=api

import (
	"context"
	"errors"
	"net/http"

	"forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/user"
)

type (
	UserRepo interface {
		GetByUsernameAndPass(context.Context, string, string) (*user.User, error)
		Add(context.Context, *user.User) (int64, error)
		UserExists(context.Context, string) bool
	}

	SessionManager interface {
		CreateToken(context.Context, *user.User) (string, error)
		CleanupUserSessions(ctx context.Context, userId int64) error
	}

	UserHandler struct {
		Repo           UserRepo
		SessionManager SessionManager
	}

	HttpUser struct {
		Username string `json:"username" validate:"notblank,max=32"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
)

func NewUserHandler(r UserRepo, sm SessionManager) *UserHandler {
	return &UserHandler{
		Repo:           r,
		SessionManager: sm,
	}
}

func (uh UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	httpUser := new(HttpUser)
	if err := common.ParseReqBody(r.Body, httpUser); err != nil {
		logger.Log(r.Context()).Infof("can't parse request body as user: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	u, err := uh.Repo.GetByUsernameAndPass(r.Context(), httpUser.Username, httpUser.Password)
	if errors.Is(err, user.ErrBadPassword) || errors.Is(err, common.ErrNotFound) {
		logger.Log(r.Context()).Infof("can't log in user `%s`: %v", httpUser.Username, err)
		common.WriteMsg(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	// Remove expired user sessions if there are any
	if err := uh.SessionManager.CleanupUserSessions(r.Context(), u.Id); err != nil {
		logger.Log(r.Context()).Errorf("user/handlers: can't cleanup sessions for user `%s`, %v", httpUser.Username, err)
		common.WriteMsg(w, "failed managing user sessions", http.StatusInternalServerError)
		return
	}

	uh.sendToken(w, r, u, http.StatusOK)
}

func (uh UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	httpUser := new(HttpUser)
	if err := common.ParseAndValidate(r.Body, httpUser); err != nil {
		common.WriteError(w, r, err)
		return
	}
	if uh.Repo.UserExists(r.Context(), httpUser.Username) {
		common.WriteError(w, r, common.Conflictf("user %q already exists", httpUser.Username))
		return
	}

	salt := common.RandStringRunes(8)
	u := &user.User{
		Username: httpUser.Username,
		Password: common.HashPass(httpUser.Password, salt),
	}
	id, err := uh.Repo.Add(r.Context(), u)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	u.Id = id

	uh.sendToken(w, r, u, http.StatusCreated)
}

func (uh *UserHandler) sendToken(w http.ResponseWriter, r *http.Request, u *user.User, code int) {
	token, err := uh.SessionManager.CreateToken(r.Context(), u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't create JWT token from user: %v", err)
		common.WriteMsg(w, "user authentication failed", http.StatusInternalServerError)
		return
	}

	tk := struct {
		Token string `json:"token"`
	}{token}
	common.WriteJSON(w, code, tk)
}
