package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type commentReq struct {
	Content string `json:"content" validate:"notblank,max=10"`
}

func TestValidate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, Validate(&commentReq{Content: "hi"}))
	})

	t.Run("blank content", func(t *testing.T) {
		err := Validate(&commentReq{Content: "   \t"})
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "content", verr.Field)
		assert.Equal(t, "content must not be blank", verr.Message)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("too long", func(t *testing.T) {
		err := Validate(&commentReq{Content: strings.Repeat("a", 11)})
		assert.EqualError(t, err, "content must be at most 10 characters")
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", fmt.Errorf("comment/repo: %w", NotFoundf("comment %d not found", 7)), 404, `{"message":"comment 7 not found"}`},
		{"forbidden", Forbiddenf("you are not the author of this comment"), 403, `{"message":"you are not the author of this comment"}`},
		{"conflict", Conflictf("already joined this community"), 409, `{"message":"already joined this community"}`},
		{"validation", &ValidationError{Field: "content", Message: "content must not be blank"}, 400, `{"message":"content must not be blank"}`},
		{"bare sentinel", ErrUnauthorized, 401, `{"message":"Unauthorized"}`},
		{"internal", errors.New("pq: connection refused"), 500, `{"message":"internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/x", nil)
			WriteError(w, r, tc.err)
			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestParsePage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/posts?page=2&size=500", nil)
	p := ParsePage(r)
	assert.Equal(t, Page{Number: 2, Size: MaxPageSize}, p)
	assert.Equal(t, 200, p.Offset())

	r = httptest.NewRequest(http.MethodGet, "/api/posts?page=-1&size=abc", nil)
	assert.Equal(t, Page{Number: 0, Size: DefaultPageSize}, ParsePage(r))
}

func TestHashPass(t *testing.T) {
	h := HashPass("sdfsdfsdf", "12345678")
	assert.Equal(t, "12345678", string(h[:8]))
	assert.Len(t, h, 8+32)
	assert.Equal(t, h, HashPass("sdfsdfsdf", "12345678"))
}
