package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// bindJSON decodes the request body into v.
func bindJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}
