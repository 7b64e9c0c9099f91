package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// bodyValues is a flat string view over a decoded request body.
type bodyValues func(key string) string

// parseBody decodes a request body submitted as either JSON or form-encoded
// data. JSON numbers are preserved verbatim as strings so that a numeric
// duration and a quoted one are handled identically downstream.
func parseBody(r *http.Request) (bodyValues, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var body map[string]interface{}
		if err := dec.Decode(&body); err != nil {
			return nil, err
		}
		return func(key string) string {
			switch v := body[key].(type) {
			case string:
				return v
			case json.Number:
				return v.String()
			default:
				return ""
			}
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostFormValue, nil
}
