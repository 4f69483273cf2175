package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"PassKeeper/internal/config"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/model"
	"PassKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CredentialHandler - JSON API над CredentialService.
type CredentialHandler struct {
	Service service.CredentialService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewCredentialHandler создаёт хендлер паролей
func NewCredentialHandler(svc service.CredentialService, logger *zap.SugaredLogger, cfg *config.Config) *CredentialHandler {
	return &CredentialHandler{Service: svc, Logger: logger, Config: cfg}
}

// RecordDTO - запись в ответе; пароль замаскирован, если ShowPass = false.
type RecordDTO struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Note     string `json:"note"`
	ShowPass bool   `json:"showPass"`
}

func toDTO(rec model.Record) RecordDTO {
	return RecordDTO{
		ID:       rec.ID,
		URL:      rec.URL,
		Username: rec.Username,
		Password: rec.DisplayPassword(),
		Note:     rec.Note,
		ShowPass: rec.ShowPass,
	}
}

type createResponse struct {
	ID int64 `json:"id"`
}

// GenerateRequest - параметры генерации; не заданные флаги берутся из generator.DefaultFlags.
type GenerateRequest struct {
	Length  int   `json:"length"`
	Upper   *bool `json:"upper"`
	Lower   *bool `json:"lower"`
	Digits  *bool `json:"digits"`
	Symbols *bool `json:"symbols"`
}

func (req GenerateRequest) flags() generator.Flags {
	f := generator.DefaultFlags()
	if req.Upper != nil {
		f.Upper = *req.Upper
	}
	if req.Lower != nil {
		f.Lower = *req.Lower
	}
	if req.Digits != nil {
		f.Digits = *req.Digits
	}
	if req.Symbols != nil {
		f.Symbols = *req.Symbols
	}
	return f
}

type generateResponse struct {
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// List GET /api/passwords?q=&show=
func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	show, _ := strconv.ParseBool(q.Get("show"))

	var (
		list []model.Record
		err  error
	)
	if query := q.Get("q"); query != "" {
		list, err = h.Service.Search(r.Context(), query)
	} else {
		list, err = h.Service.List(r.Context())
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]RecordDTO, 0, len(list))
	for _, rec := range list {
		rec.ShowPass = show
		resp = append(resp, toDTO(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create POST /api/passwords
func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f model.Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	id, err := h.Service.Add(r.Context(), model.NewRecord{Fields: f})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{ID: id})
}

// Get GET /api/passwords/{id}
func (h *CredentialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.Reveal(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(rec))
}

// Update PUT /api/passwords/{id}
func (h *CredentialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var f model.Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	if err := h.Service.Edit(r.Context(), model.StoredRecord{ID: id, Fields: f}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete DELETE /api/passwords/{id}
func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Remove(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Share GET /api/passwords/{id}/share
func (h *CredentialHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	text, err := h.Service.Share(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// Generate POST /api/generate
func (h *CredentialHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
	}
	if req.Length == 0 {
		req.Length = h.Config.GenLength
	}
	pw, err := h.Service.Generate(req.Length, req.flags())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Password: pw})
}

// writeError переводит ошибки сервиса в HTTP-статусы.
func (h *CredentialHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, generator.ErrInvalidConfiguration),
		errors.Is(err, generator.ErrInvalidLength):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		h.Logger.Errorw("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
