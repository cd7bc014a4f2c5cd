package lead

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the submission pipeline over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the HTTP adapter for the submission service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes returns the router for the lead endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/lead", h.submit)
	return r
}

type submitRequest struct {
	Email string `json:"email"`
}

type submitResponse struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Error: CodeBadJSON})
		return
	}

	res := h.svc.Submit(r.Context(), req.Email)
	writeJSON(w, res.Status, submitResponse{
		OK:     res.OK,
		ID:     res.ID,
		Error:  res.Code,
		Detail: res.Detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("write response", slog.Any("error", err))
	}
}
