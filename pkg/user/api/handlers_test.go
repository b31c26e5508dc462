package api

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/middleware"
	"forum/pkg/user"
)

var (
	userId         int64 = 1
	username             = "pike"
	salt                 = "12345678"
	password             = "sdfsdfsdf"
	hashedPassword       = common.HashPass("sdfsdfsdf", salt)
	jwtToken             = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.test.token"
)

func userReq(un, pw string) *http.Request {
	body := strings.NewReader(`{"username": "` + un + `", "password": "` + pw + `"}`)
	return httptest.NewRequest("POST", "/api/login", body)
}

func TestLogIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existingUser := user.User{Id: userId, Username: username, Password: hashedPassword}
	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	mockService := &UserHandler{
		Repo:           mockRepo,
		SessionManager: mockSm,
	}

	// Handlers log through the request logger
	logMiddleware := middleware.NewLoggingMiddleware(logger.Run("fatal"))
	handler := logMiddleware.SetupLogging(logMiddleware.AccessLog(http.HandlerFunc(mockService.LogIn)))

	t.Run("login is OK", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsernameAndPass(gomock.Any(), username, password).Return(&existingUser, nil)
		mockSm.EXPECT().CleanupUserSessions(gomock.Any(), userId).Return(nil)
		mockSm.EXPECT().CreateToken(gomock.Any(), &existingUser).Return(jwtToken, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, userReq(username, password))
		resp := w.Result()

		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			t.Errorf("error reading login response body")
			return
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		if !bytes.Contains(body, []byte(jwtToken)) {
			t.Errorf("login response doesn't contain JWT token")
			return
		}
	})

	t.Run("user not found", func(t *testing.T) {
		badUsername, badPassword := "notexists", "nevermind"
		mockRepo.EXPECT().GetByUsernameAndPass(gomock.Any(), badUsername, badPassword).
			Return(nil, common.NotFoundf("user not found"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, userReq(badUsername, badPassword))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsernameAndPass(gomock.Any(), username, "wrong").
			Return(nil, user.ErrBadPassword)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, userReq(username, "wrong"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("repo failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsernameAndPass(gomock.Any(), username, password).
			Return(nil, fmt.Errorf("db down"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, userReq(username, password))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/login", strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepo(ctrl)
	mockSm := NewMockSessionManager(ctrl)
	uh := NewUserHandler(mockRepo, mockSm)

	t.Run("created", func(t *testing.T) {
		mockRepo.EXPECT().UserExists(gomock.Any(), username).Return(false)
		mockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, u *user.User) (int64, error) {
				assert.Equal(t, username, u.Username)
				assert.Len(t, u.Password, 8+32)
				return 5, nil
			})
		mockSm.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, u *user.User) (string, error) {
				assert.Equal(t, int64(5), u.Id)
				return jwtToken, nil
			})

		w := httptest.NewRecorder()
		uh.Register(w, userReq(username, password))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), jwtToken)
	})

	t.Run("taken username", func(t *testing.T) {
		mockRepo.EXPECT().UserExists(gomock.Any(), username).Return(true)

		w := httptest.NewRecorder()
		uh.Register(w, userReq(username, password))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("username taken concurrently", func(t *testing.T) {
		mockRepo.EXPECT().UserExists(gomock.Any(), username).Return(false)
		mockRepo.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(int64(0), common.Conflictf(`user "pike" already exists`))

		w := httptest.NewRecorder()
		uh.Register(w, userReq(username, password))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("blank username", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.Register(w, userReq("   ", password))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "username must not be blank")
	})

	t.Run("short password", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.Register(w, userReq(username, "123"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password must be at least 8 characters")
	})
}
