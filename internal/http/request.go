package http

import (
	"encoding/json"
	"io"
	"net/http"
)

// decodeBody buffers the whole request body and parses it as a JSON
// object. Field types are checked later by the validators, so values
// stay untyped here.
func decodeBody(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}
