package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
)

var formDecoder = form.NewDecoder()

func (s *Service) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// decodeBody accepts JSON or urlencoded form bodies, mirroring the two
// body parsers mounted on the API this service replaces.
func decodeBody(r *http.Request, dst any) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return err
		}
		return formDecoder.Decode(dst, r.PostForm)
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(flow.Param(r.Context(), name), 10, 64)
}

func queryUserID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
}

// hasID treats absent and zero ids the same way, so a body like
// {"userId": 0} fails validation rather than scoping queries to nobody.
func hasID(v *int64) bool {
	return v != nil && *v != 0
}
