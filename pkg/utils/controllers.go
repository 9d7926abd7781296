package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type Response struct {
	Data    interface{} `json:"data"`
	Success bool        `json:"success"`
}

func (r *Response) ToJSON() []byte {
	data, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	return data
}

func SendJSON(w http.ResponseWriter, data interface{}, success bool, status int, headers map[string]string) {
	resObj := Response{Data: data, Success: success}

	w.Header().Add("Content-Type", "application/json")

	for header, val := range headers {
		w.Header().Add(header, val)
	}

	w.WriteHeader(status)
	if status != http.StatusNoContent {
		_, _ = w.Write(resObj.ToJSON())
	}
}

// ParseIDParam reads the {id} route variable as a positive integer.
func ParseIDParam(r *http.Request) (uint64, error) {
	params := mux.Vars(r)

	raw, ok := params["id"]
	if !ok || len(raw) < 1 {
		return 0, errors.New("project id is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("project id must be a positive integer")
	}

	return id, nil
}

// FormValue returns the named form field, trimmed of surrounding whitespace.
func FormValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}
