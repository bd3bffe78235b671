package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/dataset-analyzer/internal/analyzer"
	"github.com/eugenenazirov/dataset-analyzer/internal/dataset"
	"github.com/eugenenazirov/dataset-analyzer/internal/stats"
	"github.com/eugenenazirov/dataset-analyzer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires analyzer and storage dependencies into HTTP handlers.
type Handler struct {
	storage storage.Storage
	logger  *zap.Logger

	clock func() time.Time

	mu                  sync.RWMutex
	thresholdsUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, logger *zap.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		logger:  logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.thresholdsUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetThresholds(w http.ResponseWriter, r *http.Request) {
	_ = r
	thresholds, err := h.storage.GetThresholds()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := thresholdsResponse{
		Thresholds: thresholds,
		UpdatedAt:  h.currentThresholdsUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutThresholds(w http.ResponseWriter, r *http.Request) {
	var req thresholdsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Thresholds) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid thresholds", "thresholds must contain at least one percentage")
		return
	}

	if err := h.storage.SetThresholds(req.Thresholds); err != nil {
		if errors.Is(err, storage.ErrInvalidThresholds) {
			writeError(w, http.StatusBadRequest, "Invalid thresholds", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markThresholdsUpdated()

	thresholds, err := h.storage.GetThresholds()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := thresholdsResponse{
		Thresholds: thresholds,
		UpdatedAt:  h.currentThresholdsUpdatedAt(),
		Message:    "Thresholds updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Datasets) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "datasets must contain at least one entry")
		return
	}

	datasets := make([]dataset.Dataset, 0, len(req.Datasets))
	for _, ds := range req.Datasets {
		if ds.ID == "" {
			writeError(w, http.StatusBadRequest, "Invalid request", "every dataset needs an id")
			return
		}
		datasets = append(datasets, dataset.Dataset{
			ID:      ds.ID,
			Target:  ds.Target,
			Numbers: ds.Numbers,
		})
	}

	thresholds, err := h.storage.GetThresholds()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	start := time.Now()
	report := analyzer.New(h.logger, analyzer.WithThresholds(thresholds)).Run(datasets)
	elapsed := time.Since(start)

	if err := h.storage.SaveReport(report); err != nil {
		writeInternalError(w, err)
		return
	}

	resp := reportResponse(report)
	resp.AnalysisTimeMs = elapsed.Milliseconds()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	_ = r
	report, err := h.storage.LatestReport()
	if err != nil {
		if errors.Is(err, storage.ErrNoReport) {
			writeError(w, http.StatusNotFound, "No report", "run an analysis first")
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reportResponse(report))
}

func (h *Handler) currentThresholdsUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.thresholdsUpdatedAt
}

func (h *Handler) markThresholdsUpdated() {
	h.mu.Lock()
	h.thresholdsUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type analyzeRequest struct {
	Datasets []datasetPayload `json:"datasets"`
}

type datasetPayload struct {
	ID      string    `json:"id"`
	Target  float64   `json:"target"`
	Numbers []float64 `json:"numbers"`
}

type thresholdsRequest struct {
	Thresholds []float64 `json:"thresholds"`
}

type thresholdsResponse struct {
	Thresholds []float64 `json:"thresholds"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Message    string    `json:"message,omitempty"`
}

type setResponse struct {
	ID          string    `json:"id"`
	Target      float64   `json:"target"`
	Result      *float64  `json:"result,omitempty"`
	Error       *float64  `json:"error,omitempty"`
	Combination []float64 `json:"combination,omitempty"`
	Unresolved  bool      `json:"unresolved,omitempty"`
	Reason      string    `json:"reason,omitempty"`
}

type summaryResponse struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"stdDev"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
}

type toleranceResponse struct {
	Threshold float64 `json:"threshold"`
	Count     int     `json:"count"`
	Fraction  float64 `json:"fraction"`
}

type analyzeResponse struct {
	Sets               []setResponse       `json:"sets"`
	Resolved           int                 `json:"resolved"`
	Summary            *summaryResponse    `json:"summary,omitempty"`
	SummaryUnavailable string              `json:"summaryUnavailable,omitempty"`
	Tolerance          []toleranceResponse `json:"tolerance"`
	MaxError           float64             `json:"maxError"`
	Rating             stats.Rating        `json:"rating,omitempty"`
	Assessment         string              `json:"assessment,omitempty"`
	AnalysisTimeMs     int64               `json:"analysisTimeMs,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func reportResponse(report analyzer.Report) analyzeResponse {
	sets := make([]setResponse, 0, len(report.Sets))
	for _, set := range report.Sets {
		sr := setResponse{
			ID:         set.ID,
			Target:     set.Target,
			Unresolved: set.Unresolved,
			Reason:     set.FailureReason,
		}
		if !set.Unresolved {
			value := set.Result.Value
			errPct := set.Result.Error
			sr.Result = &value
			sr.Error = &errPct
			sr.Combination = []float64{
				set.Result.Combination.N1,
				set.Result.Combination.N2,
				set.Result.Combination.N3,
			}
		}
		sets = append(sets, sr)
	}

	resp := analyzeResponse{
		Sets:     sets,
		Resolved: report.Resolved(),
		MaxError: report.MaxError,
	}

	if report.Summary != nil {
		resp.Summary = &summaryResponse{
			Mean:     report.Summary.Mean,
			Median:   report.Summary.Median,
			StdDev:   report.Summary.StdDev,
			Variance: report.Summary.Variance,
			Min:      report.Summary.Min,
			Max:      report.Summary.Max,
			Range:    report.Summary.Range,
			Q1:       report.Summary.Q1,
			Q3:       report.Summary.Q3,
			IQR:      report.Summary.IQR,
		}
	}
	resp.SummaryUnavailable = report.SummaryUnavailable

	resp.Tolerance = make([]toleranceResponse, 0, len(report.Tolerance))
	for _, tc := range report.Tolerance {
		resp.Tolerance = append(resp.Tolerance, toleranceResponse{
			Threshold: tc.Threshold,
			Count:     tc.Count,
			Fraction:  tc.Fraction,
		})
	}

	if report.Resolved() > 0 {
		resp.Rating = report.Rating
		resp.Assessment = report.Rating.Assessment()
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
