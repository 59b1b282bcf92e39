package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
)

// termJSON is the wire shape of a term.
type termJSON struct {
	ID          int64     `json:"id"`
	Keyword     string    `json:"keyword"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type updateJSON struct {
	Keyword     *string `json:"keyword"`
	Description *string `json:"description"`
}

type errorJSON struct {
	Detail string `json:"detail"`
}

func toJSON(t *models.Term) termJSON {
	return termJSON{
		ID:          t.ID,
		Keyword:     t.Keyword,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the status and detail of err's outcome and
// reports the outcome to the access log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	o := common.OutcomeOf(err)
	setOutcome(r.Context(), o)
	writeJSON(w, StatusOf(o), errorJSON{Detail: common.Detail(err)})
}
