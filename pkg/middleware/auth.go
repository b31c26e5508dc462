package middleware

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	. "forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/sessions"
	"forum/pkg/user"
)

type (
	IUserRepo interface {
		GetById(context.Context, int64) (*user.User, error)
	}
	ISessionManager interface {
		UserFromToken(context.Context, string) (*user.User, error)
	}
	Auth struct {
		UserRepo       IUserRepo
		SessionManager ISessionManager
	}
)

func NewAuthMiddleware(sm ISessionManager, ur IUserRepo) *Auth {
	return &Auth{
		UserRepo:       ur,
		SessionManager: sm,
	}
}

// Middleware resolves the bearer token into the request user. Requests
// without a usable token go on anonymously.
func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		userFromToken, err := auth.SessionManager.UserFromToken(r.Context(), authHeader)
		if err != nil {
			logger.Log(r.Context()).Infof("auth: can't get user from token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		repoCtx, repoCtxCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer repoCtxCancel()
		u, err := auth.UserRepo.GetById(repoCtx, userFromToken.Id)
		if errors.Is(err, ErrNotFound) {
			logger.Log(r.Context()).Infof("auth: user %d from token is gone", userFromToken.Id)
			WriteMsg(w, "user not found", http.StatusUnauthorized)
			return
		}
		if err != nil {
			WriteError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(sessions.WithUser(r.Context(), u)))
	})
}

// RequireAuth answers 401 unless the auth middleware resolved a user.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := sessions.GetAuthUser(r.Context()); err != nil {
			WriteError(w, r, err)
			return
		}
		next(w, r)
	}
}
