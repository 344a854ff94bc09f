// Package server exposes the worksheet evaluation and spreadsheet export over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/config"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/report"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/worksheet"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/output"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SubmissionIDHeader carries the id assigned to each generated workbook.
const SubmissionIDHeader = "X-Submission-ID"

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	generator   *report.Generator
}

// Options configure NewHandler.
type Options struct {
	MaxBodySize int64
	Version     string
	Metrics     bool
}

// NewHandler constructs the HTTP handler that serves the worksheet API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		generator:   report.NewGenerator(logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.Metrics {
		r.Use(instrument)
	}

	r.Get("/health", h.handleHealth)
	r.Get("/api/version", h.handleVersion)

	r.Route("/api/worksheet", func(r chi.Router) {
		r.Post("/evaluate", h.handleEvaluate)
		r.Post("/export", h.handleExport)
		r.Post("/config", h.handleConfigExport)
	})

	if opts.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// Run serves the API on cfg.Address until ctx is canceled.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr: cfg.Address,
		Handler: NewHandler(logger, Options{
			MaxBodySize: cfg.BodySizeBytes(),
			Version:     version,
			Metrics:     cfg.MetricsEnabled(),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("worksheet server listening",
		zap.String("op", "server.Run"),
		zap.String("address", cfg.Address),
		zap.Int64("maxBodySize", cfg.BodySizeBytes()),
		zap.Bool("metrics", cfg.MetricsEnabled()),
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down worksheet server", zap.String("op", "server.Run"))
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("worksheet http server: %w", err)
	}
}

type evaluateResponse struct {
	Period     string        `json:"period"`
	Metrics    metricsView   `json:"metrics"`
	Expenses   []expenseView `json:"expenses"`
	CTC        ctcView       `json:"ctc"`
	Scores     scoresView    `json:"scores"`
	Goal       *goalView     `json:"goal,omitempty"`
	Exportable bool          `json:"exportable"`
	Warnings   []string      `json:"warnings,omitempty"`
	CSV        string        `json:"csv"`
	Duration   string        `json:"duration"`
}

type metricsView struct {
	Income          float64 `json:"income"`
	TotalExpenses   float64 `json:"totalExpenses"`
	Savings         float64 `json:"savings"`
	SavingsRatePct  float64 `json:"savingsRatePct"`
	ExpenseRatioPct float64 `json:"expenseRatioPct"`
	NeedsAmount     float64 `json:"needsAmount"`
	WantsAmount     float64 `json:"wantsAmount"`
	NeedsPct        float64 `json:"needsPct"`
	WantsPct        float64 `json:"wantsPct"`
}

type expenseView struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	PctOfIncome float64 `json:"pctOfIncome"`
}

type ctcView struct {
	GrossCTC          float64 `json:"grossCtc"`
	TakeHome          float64 `json:"takeHome"`
	SpendableIncome   float64 `json:"spendableIncome"`
	EssentialExpenses float64 `json:"essentialExpenses"`
}

type scoresView struct {
	Health             int     `json:"health"`
	SavingsComponent   float64 `json:"savingsComponent"`
	ExpenseComponent   float64 `json:"expenseComponent"`
	AdherenceComponent float64 `json:"adherenceComponent"`
	Alignment          int     `json:"alignment"`
}

type goalView struct {
	Target      float64 `json:"target"`
	Savings     float64 `json:"savings"`
	Shortfall   float64 `json:"shortfall"`
	ProgressPct float64 `json:"progressPct"`
	Met         bool    `json:"met"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"
	start := time.Now()

	conf, ok := h.readWorksheet(w, r, op)
	if !ok {
		return
	}

	result, err := worksheet.Evaluate(h.logger, *conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	healthScores.Observe(float64(result.Scores.Health.Score))

	csvData, err := output.CsvString(result)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render CSV: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	response := buildEvaluateResponse(result)
	response.CSV = csvData
	response.Duration = elapsed.String()

	h.logger.Info("worksheet evaluated",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.Int("healthScore", result.Scores.Health.Score),
		zap.Int("alignmentScore", result.Scores.Alignment),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"

	conf, ok := h.readWorksheet(w, r, op)
	if !ok {
		return
	}

	result, err := worksheet.Evaluate(h.logger, *conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	if !result.Exportable() {
		worksheetExports.WithLabelValues(exportSkipped).Inc()
		h.logger.Info("export skipped: student name is empty",
			zap.String("op", op),
			zap.String("requestId", middleware.GetReqID(r.Context())),
		)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	submissionID := uuid.NewString()
	artifact, err := h.generator.Generate(report.FromResult(result))
	if err != nil {
		worksheetExports.WithLabelValues(exportFailed).Inc()
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to generate workbook: %v", err), op)
		return
	}
	worksheetExports.WithLabelValues(exportGenerated).Inc()

	h.logger.Info("workbook exported",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.String("submissionId", submissionID),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Data)),
	)

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": artifact.Filename,
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Header().Set(SubmissionIDHeader, submissionID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		h.logger.Warn("failed to write workbook response",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"

	conf, ok := h.readWorksheet(w, r, op)
	if !ok {
		return
	}

	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// readWorksheet decodes the request body as a worksheet. The body format follows
// the Content-Type header and defaults to JSON.
func (h *handler) readWorksheet(w http.ResponseWriter, r *http.Request, op string) (*config.Configuration, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err), op)
		return nil, false
	}

	if len(bytes.TrimSpace(buf.Bytes())) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing worksheet in request body", op)
		return nil, false
	}

	conf, err := config.LoadConfigurationFromReader(&buf, bodyFormat(r.Header.Get("Content-Type")))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return nil, false
	}
	return conf, true
}

func bodyFormat(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "json"
	}

	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return "yaml"
	case "application/toml", "text/toml":
		return "toml"
	default:
		return "json"
	}
}

func buildEvaluateResponse(result worksheet.Result) evaluateResponse {
	in := result.Inputs.Budget
	ratios := result.Ratios

	expenses := make([]expenseView, 0, budget.NumCategories)
	for _, c := range budget.Categories() {
		expenses = append(expenses, expenseView{
			Category:    c.String(),
			Amount:      in.Expenses.Amount(c),
			PctOfIncome: in.CategoryPct(c),
		})
	}

	response := evaluateResponse{
		Period: in.Period.String(),
		Metrics: metricsView{
			Income:          in.Income,
			TotalExpenses:   ratios.TotalExpenses,
			Savings:         ratios.Savings,
			SavingsRatePct:  ratios.SavingsRatePct,
			ExpenseRatioPct: ratios.ExpenseRatioPct,
			NeedsAmount:     ratios.NeedsAmount,
			WantsAmount:     ratios.WantsAmount,
			NeedsPct:        ratios.NeedsPct,
			WantsPct:        ratios.WantsPct,
		},
		Expenses: expenses,
		CTC: ctcView{
			GrossCTC:          result.CTC.GrossCTC,
			TakeHome:          result.CTC.TakeHome,
			SpendableIncome:   result.CTC.SpendableIncome,
			EssentialExpenses: result.EssentialExpenses(),
		},
		Scores: scoresView{
			Health:             result.Scores.Health.Score,
			SavingsComponent:   result.Scores.Health.Savings,
			ExpenseComponent:   result.Scores.Health.ExpenseRatio,
			AdherenceComponent: result.Scores.Health.Adherence,
			Alignment:          result.Scores.Alignment,
		},
		Exportable: result.Exportable(),
		Warnings:   result.Warnings,
	}

	if goal := result.Goal; goal != nil {
		response.Goal = &goalView{
			Target:      goal.Target,
			Savings:     goal.Savings,
			Shortfall:   goal.Shortfall,
			ProgressPct: goal.ProgressPct,
			Met:         goal.Met,
		}
	}

	return response
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("worksheet request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
