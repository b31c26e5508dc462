package common

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"

	"golang.org/x/crypto/argon2"

	"forum/pkg/logger"
)

type Msg struct {
	Message string `json:"message"`
}

func WriteMsg(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	WriteRespJSON(w, Msg{msg})
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func RandStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

// HashPass returns salt followed by the argon2id hash. Salt must have len of 8.
func HashPass(plainPassword, salt string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	res := []byte(salt)
	return append(res, hashedPass...)
}

func ParseReqBody(body io.Reader, ptr interface{}) error {
	return json.NewDecoder(body).Decode(ptr)
}

// ParseAndValidate decodes the JSON body into ptr and runs struct validation on it.
func ParseAndValidate(body io.Reader, ptr interface{}) error {
	if err := ParseReqBody(body, ptr); err != nil {
		return &ValidationError{Field: "body", Message: "bad request format"}
	}
	return Validate(ptr)
}

func WriteRespJSON(w http.ResponseWriter, data interface{}) {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Log(context.Background()).Errorf("common: JSON marshaling failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"response failed"}`))
		return
	}

	if _, err = w.Write(resp); err != nil {
		logger.Log(context.Background()).Warnf("common: failed writing response: %v", err)
	}
}

// WriteJSON writes data with the given status code.
func WriteJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	WriteRespJSON(w, data)
}
