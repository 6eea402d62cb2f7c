package api

import (
	"encoding/json"

	"github.com/launchdash/launchdash/pkg/types"
	"github.com/launchdash/launchdash/server/internal/dashboard"
	"github.com/launchdash/launchdash/server/internal/dataset"
)

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status      string   `json:"status"`
	RecordCount int      `json:"record_count"`
	SiteCount   int      `json:"site_count"`
	Sites       []string `json:"sites"`
	PayloadMin  float64  `json:"payload_min"`
	PayloadMax  float64  `json:"payload_max"`
}

// UpdateRequest is the body of POST /api/v1/update. Changed names the
// control that fired; empty means "render everything". Values carries the
// current value of each control keyed by control ID.
type UpdateRequest struct {
	Changed string                     `json:"changed"`
	Values  map[string]json.RawMessage `json:"values"`
}

// UpdateResponse carries one recomputed figure per affected output.
type UpdateResponse struct {
	Outputs map[string]types.Figure `json:"outputs"`
}

// RecordsResponse is the payload for GET /api/v1/records.
type RecordsResponse struct {
	Site         string                 `json:"site"`
	PayloadRange dashboard.PayloadRange `json:"payload_range"`
	Count        int                    `json:"count"`
	Records      []dataset.LaunchRecord `json:"records"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
