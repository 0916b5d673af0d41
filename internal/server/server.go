// Package server exposes the calculator over a JSON HTTP API. It is a thin
// presentation collaborator: every endpoint maps onto one calculator mutation
// or read, and all derived figures come from the snapshot the mutation
// returns. Notification classifications are resolved to localized text per
// request via the Accept-Language header.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/btcbacked/collateral-calc/internal/calculator"
	"github.com/btcbacked/collateral-calc/internal/config"
	"github.com/btcbacked/collateral-calc/pkg/constants"
	"github.com/btcbacked/collateral-calc/pkg/i18n"
	"github.com/btcbacked/collateral-calc/pkg/validation"
)

type handler struct {
	logger      *zap.Logger
	calc        *calculator.Calculator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(logger *zap.Logger, calc *calculator.Calculator, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = calculator.New(logger, nil)
	}
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:      logger,
		calc:        calc,
		maxBodySize: constants.DefaultMaxBodySizeBytes,
		version:     version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/duration", h.handleDuration)
	mux.HandleFunc("/api/positions/add", h.handleAddPosition)
	mux.HandleFunc("/api/positions/remove", h.handleRemovePosition)
	mux.HandleFunc("/api/rates/add", h.handleAddRate)
	mux.HandleFunc("/api/rates/remove", h.handleRemoveRate)
	mux.HandleFunc("/api/prices/add", h.handleAddPrice)
	mux.HandleFunc("/api/prices/remove", h.handleRemovePrice)
	mux.HandleFunc("/api/snapshot", h.handleSnapshot)
	mux.HandleFunc("/api/export", h.handleExport)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type snapshotResponse struct {
	calculator.Snapshot
	NotificationKey     string `json:"notificationKey,omitempty"`
	NotificationMessage string `json:"notificationMessage,omitempty"`
}

type errorResponse struct {
	Error       string                 `json:"error"`
	FieldErrors validation.FieldErrors `json:"fieldErrors,omitempty"`
}

type durationRequest struct {
	Months int `json:"months"`
}

type positionRequest struct {
	Principal  string `json:"principal"`
	Collateral string `json:"collateral"`
}

type rateRequest struct {
	Rate   string `json:"rate"`
	Period string `json:"period"`
}

type priceRequest struct {
	Price string `json:"price"`
}

type indexRequest struct {
	Index int `json:"index"`
}

func (h *handler) handleDuration(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Months < 0 {
		h.respondError(w, http.StatusUnprocessableEntity, "months must not be negative", nil)
		return
	}
	h.respondSnapshot(w, r, h.calc.SetDuration(req.Months))
}

func (h *handler) handleAddPosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	errs := validation.Check(map[validation.Field]string{
		validation.FieldPrincipal:  req.Principal,
		validation.FieldCollateral: req.Collateral,
	})
	if !errs.Valid() {
		h.respondError(w, http.StatusUnprocessableEntity, "invalid position", errs)
		return
	}
	snap, ok := h.calc.AddPosition(calculator.Position{Principal: req.Principal, Collateral: req.Collateral})
	if !ok {
		h.respondError(w, http.StatusUnprocessableEntity, "position rejected", nil)
		return
	}
	h.respondSnapshot(w, r, snap)
}

func (h *handler) handleRemovePosition(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	h.respondSnapshot(w, r, h.calc.RemovePosition(req.Index))
}

func (h *handler) handleAddRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	errs := validation.Check(map[validation.Field]string{
		validation.FieldRate:   req.Rate,
		validation.FieldPeriod: req.Period,
	})
	if !errs.Valid() {
		h.respondError(w, http.StatusUnprocessableEntity, "invalid rate period", errs)
		return
	}
	snap, ok := h.calc.AddRate(calculator.RatePeriod{Rate: req.Rate, Period: req.Period})
	if !ok {
		h.respondError(w, http.StatusConflict, "rate schedule already covers the loan duration", nil)
		return
	}
	h.respondSnapshot(w, r, snap)
}

func (h *handler) handleRemoveRate(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	h.respondSnapshot(w, r, h.calc.RemoveRate(req.Index))
}

func (h *handler) handleAddPrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	errs := validation.Check(map[validation.Field]string{
		validation.FieldPrice: req.Price,
	})
	if !errs.Valid() {
		h.respondError(w, http.StatusUnprocessableEntity, "invalid price", errs)
		return
	}
	snap, ok := h.calc.AddPrice(req.Price)
	if !ok {
		h.respondError(w, http.StatusUnprocessableEntity, "price rejected", nil)
		return
	}
	h.respondSnapshot(w, r, snap)
}

func (h *handler) handleRemovePrice(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	h.respondSnapshot(w, r, h.calc.RemovePrice(req.Index))
}

func (h *handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondSnapshot(w, r, h.calc.Snapshot())
}

// handleExport serializes the current scenario as YAML in the preset format,
// so an export can be fed straight back in as a startup preset.
func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	snap := h.calc.Snapshot()
	preset := config.Preset{
		DurationMonths: snap.Duration,
		Prices:         snap.Prices,
	}
	for _, p := range snap.Positions {
		preset.Positions = append(preset.Positions, config.PresetPosition{Principal: p.Principal, Collateral: p.Collateral})
	}
	for _, rate := range snap.Rates {
		preset.Rates = append(preset.Rates, config.PresetRate{Rate: rate.Rate, Period: rate.Period})
	}

	data, err := yaml.Marshal(map[string]config.Preset{"preset": preset})
	if err != nil {
		h.logger.Error("failed to marshal scenario export", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to serialize scenario", nil)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Disposition", "attachment; filename=\"scenario.yaml\"")
	_, _ = w.Write(data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

// decodeBody enforces POST, limits the body size, and decodes JSON into dst.
// Responds with the appropriate error status and returns false on failure.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), nil)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse request: %v", err), nil)
		return false
	}
	return true
}

func (h *handler) respondSnapshot(w http.ResponseWriter, r *http.Request, snap calculator.Snapshot) {
	resp := snapshotResponse{Snapshot: snap}
	if key := snap.Notification.MessageKey(); key != "" {
		bundle := i18n.ForTags(r.Header.Get("Accept-Language"))
		resp.NotificationKey = key
		resp.NotificationMessage = bundle.T(key)
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, fieldErrors validation.FieldErrors) {
	h.respondJSON(w, status, errorResponse{Error: msg, FieldErrors: fieldErrors})
}
