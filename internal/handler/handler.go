package handler

import (
	"context"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"benefits-engine/internal/engine"
	"benefits-engine/internal/model"
	"benefits-engine/internal/programs"
	"benefits-engine/internal/store"
)

const evaluationsPath = "/v1/evaluations"

// Options bounds batch requests.
type Options struct {
	BatchConcurrency int
	MaxBatchSize     int
}

// Handler serves the HTTP API. A nil store disables evaluation history.
type Handler struct {
	store   store.Store
	opts    Options
	metrics fasthttp.RequestHandler
}

func New(st store.Store, opts Options) *Handler {
	if opts.BatchConcurrency < 1 {
		opts.BatchConcurrency = 1
	}
	return &Handler{
		store:   st,
		opts:    opts,
		metrics: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Serve routes a request.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/v1/eligibility":
		h.post(ctx, h.handleEvaluate)
	case path == "/v1/eligibility/batch":
		h.post(ctx, h.handleBatch)
	case path == "/v1/eligibility/compare":
		h.post(ctx, h.handleCompare)
	case path == "/v1/programs":
		h.get(ctx, h.handlePrograms)
	case path == evaluationsPath:
		h.get(ctx, h.handleListEvaluations)
	case strings.HasPrefix(path, evaluationsPath+"/"):
		h.get(ctx, func(ctx *fasthttp.RequestCtx) {
			h.handleGetEvaluation(ctx, strings.TrimPrefix(path, evaluationsPath+"/"))
		})
	case path == "/healthz":
		h.get(ctx, func(ctx *fasthttp.RequestCtx) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		})
	case path == "/metrics":
		h.get(ctx, h.metrics)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) post(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) get(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) handleEvaluate(ctx *fasthttp.RequestCtx) {
	var req model.EvaluationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(&req)
	if err := h.save(resp); err != nil {
		zap.L().Error("handler: save evaluation", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to store evaluation")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleBatch(ctx *fasthttp.RequestCtx) {
	var req model.BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Requests) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one request is required")
		return
	}
	if h.opts.MaxBatchSize > 0 && len(req.Requests) > h.opts.MaxBatchSize {
		writeError(ctx, fasthttp.StatusRequestEntityTooLarge,
			"Batch exceeds "+strconv.Itoa(h.opts.MaxBatchSize)+" requests")
		return
	}

	resps, err := engine.ProcessBatch(context.Background(), req.Requests, h.opts.BatchConcurrency)
	if err != nil {
		zap.L().Error("handler: batch evaluation", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Batch evaluation failed")
		return
	}
	for _, resp := range resps {
		if err := h.save(resp); err != nil {
			zap.L().Error("handler: save evaluation", zap.Error(err))
			writeError(ctx, fasthttp.StatusInternalServerError, "Failed to store evaluation")
			return
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, model.BatchResponse{Responses: resps})
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	var req model.CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.Compare(&req))
}

func (h *Handler) handlePrograms(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, programs.All())
}

func (h *Handler) handleGetEvaluation(ctx *fasthttp.RequestCtx, id string) {
	if h.store == nil {
		writeError(ctx, fasthttp.StatusNotFound, "Evaluation history is disabled")
		return
	}
	resp, err := h.store.GetEvaluation(context.Background(), id)
	if err != nil {
		if eris.Is(err, store.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, "Evaluation not found: "+id)
			return
		}
		zap.L().Error("handler: get evaluation", zap.String("evaluation_id", id), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to load evaluation")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleListEvaluations(ctx *fasthttp.RequestCtx) {
	if h.store == nil {
		writeError(ctx, fasthttp.StatusNotFound, "Evaluation history is disabled")
		return
	}
	limit := store.DefaultListLimit
	if raw := ctx.QueryArgs().Peek("limit"); len(raw) > 0 {
		n, err := strconv.Atoi(string(raw))
		if err != nil || n < 1 {
			writeError(ctx, fasthttp.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	list, err := h.store.ListEvaluations(context.Background(), limit)
	if err != nil {
		zap.L().Error("handler: list evaluations", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to list evaluations")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, list)
}

// save records successful evaluations when history is enabled.
func (h *Handler) save(resp *model.EvaluationResponse) error {
	if h.store == nil || resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess {
		return nil
	}
	return h.store.SaveEvaluation(context.Background(), resp)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("handler: encode response", zap.Error(err))
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"message":"Failed to encode response"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
