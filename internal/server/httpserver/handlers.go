package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

type handlers struct {
	directory services.Directory
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.directory.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]termJSON, 0, len(items))
	for i := range items {
		out = append(out, toJSON(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	term, err := h.directory.Get(r.Context(), keyword)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJSON(term))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateTermInput
	if err := decode(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	term, err := h.directory.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toJSON(term))
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body updateJSON
	if err := decode(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	term, err := h.directory.Update(r.Context(), keyword, models.TermPatch{Keyword: body.Keyword, Description: body.Description})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJSON(term))
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	keyword, err := keywordParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.directory.Delete(r.Context(), keyword); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// keywordParam returns the decoded {keyword} path segment.
func keywordParam(r *http.Request) (string, error) {
	keyword := chi.URLParam(r, "keyword")
	if r.URL.RawPath == "" {
		return keyword, nil
	}
	decoded, err := url.PathUnescape(keyword)
	if err != nil {
		return "", &common.ValidationError{Field: "keyword", Rule: "path_escape"}
	}
	return decoded, nil
}

// decode reads one JSON document into v. Malformed bodies are invalid input.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &common.ValidationError{Field: "body", Rule: "required"}
		}
		return fmt.Errorf("%w: %w", &common.ValidationError{Field: "body", Rule: "json"}, err)
	}
	return nil
}
