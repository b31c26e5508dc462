package common

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// IdVar parses the numeric route variable name.
func IdVar(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: name, Message: name + " must be a positive integer"}
	}
	return id, nil
}
