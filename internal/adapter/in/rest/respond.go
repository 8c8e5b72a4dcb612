package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

const msgNoBody = "No JSON data provided"

var errNoBody = errors.New("no json data provided")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody unmarshals the request body into v. A missing, unparseable
// or empty ({}) object counts as no data, matching the API contract.
func decodeBody(r *http.Request, v any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return errNoBody
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		return errNoBody
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errNoBody
	}
	return nil
}

// pathID parses the {id} segment. Non-numeric ids behave like absent
// entities rather than malformed requests.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
