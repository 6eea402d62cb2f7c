package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/launchdash/launchdash/server/internal/dashboard"
	"github.com/launchdash/launchdash/server/internal/dataset"
)

// maxUpdateBody caps the size of an update request body.
const maxUpdateBody = 64 << 10

// Handler is the HTTP handler for all /api/v1/* endpoints.
type Handler struct {
	table  *dataset.Table
	reg    *dashboard.Registry
	layout dashboard.Layout
	mux    *http.ServeMux
}

// New creates a Handler over the read-only table and registers all routes.
func New(t *dataset.Table, reg *dashboard.Registry, layout dashboard.Layout) http.Handler {
	h := &Handler{table: t, reg: reg, layout: layout, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/layout", h.getLayout)
	h.mux.HandleFunc("/api/v1/update", h.update)
	h.mux.HandleFunc("/api/v1/charts/success-pie", h.successPie)
	h.mux.HandleFunc("/api/v1/charts/payload-scatter", h.payloadScatter)
	h.mux.HandleFunc("/api/v1/records", h.records)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health: dataset summary.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	lo, hi := h.table.PayloadBounds()
	sites := h.table.Sites()
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		RecordCount: h.table.Len(),
		SiteCount:   len(sites),
		Sites:       sites,
		PayloadMin:  lo,
		PayloadMax:  hi,
	})
}

// getLayout returns GET /api/v1/layout: the control view model.
func (h *Handler) getLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.layout)
}

// update handles POST /api/v1/update: recomputes the outputs that depend on
// the changed control.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBody)).Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid update request: "+err.Error())
		return
	}

	state := h.layout.DefaultState().ApplyValues(req.Values)
	outputs, err := h.reg.Dispatch(req.Changed, state)
	if errors.Is(err, dashboard.ErrUnknownControl) {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("api: dispatch failed", "changed", req.Changed, "err", err)
		jsonErr(w, http.StatusInternalServerError, "recompute failed")
		return
	}

	slog.Debug("api: update", "changed", req.Changed, "site", state.SelectedSite,
		"range", state.PayloadRange, "outputs", len(outputs))
	jsonResp(w, http.StatusOK, UpdateResponse{Outputs: outputs})
}

// successPie returns GET /api/v1/charts/success-pie?site=: the pie figure.
func (h *Handler) successPie(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	state := h.stateFromQuery(r)
	jsonResp(w, http.StatusOK, dashboard.SiteSuccessPie(h.table, state.SelectedSite))
}

// payloadScatter returns GET /api/v1/charts/payload-scatter: the scatter figure.
func (h *Handler) payloadScatter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	state := h.stateFromQuery(r)
	jsonResp(w, http.StatusOK, dashboard.PayloadScatter(h.table, state.SelectedSite, state.PayloadRange))
}

// records returns GET /api/v1/records: the rows behind the scatter chart.
func (h *Handler) records(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	state := h.stateFromQuery(r)

	recs := []dataset.LaunchRecord{}
	if state.PayloadRange.Valid() {
		preds := []dataset.Predicate{
			dataset.PayloadWithin(state.PayloadRange.Low(), state.PayloadRange.High()),
		}
		if state.SelectedSite != dashboard.AllSites {
			preds = append(preds, dataset.AtSite(state.SelectedSite))
		}
		recs = h.table.Where(preds...)
	}

	jsonResp(w, http.StatusOK, RecordsResponse{
		Site:         state.SelectedSite,
		PayloadRange: state.PayloadRange,
		Count:        len(recs),
		Records:      recs,
	})
}

// --- helpers ----------------------------------------------------------------

// stateFromQuery overlays ?site=, ?low= and ?high= onto the default control
// state. Unparsable or non-finite numbers keep the default bound.
func (h *Handler) stateFromQuery(r *http.Request) dashboard.ControlState {
	state := h.layout.DefaultState()
	q := r.URL.Query()
	if site := q.Get("site"); site != "" {
		state.SelectedSite = site
	}
	if v, ok := parseBound(q.Get("low")); ok {
		state.PayloadRange[0] = v
	}
	if v, ok := parseBound(q.Get("high")); ok {
		state.PayloadRange[1] = v
	}
	return state
}

// parseBound parses a finite payload bound.
func parseBound(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
