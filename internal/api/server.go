// Package api exposes the chat pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Coolixy/FloatChat/internal/model"
)

// Resolver answers questions and exposes the raw rows behind them.
type Resolver interface {
	Resolve(ctx context.Context, q string, memory []model.ChatTurn) string
	RawRecords(ctx context.Context, q string) ([]model.Profile, error)
}

// HistoryStore persists and recalls past exchanges.
type HistoryStore interface {
	SaveInteraction(ctx context.Context, query, response string) (*model.Interaction, error)
	RecentInteractions(ctx context.Context, limit int) ([]model.Interaction, error)
}

// Grapher renders a plot for a set of records and returns the generated
// file name inside the graphs directory.
type Grapher interface {
	Render(records []model.Profile, query string) (string, error)
}

// Scripted replies for the plotting path.
const (
	noPlotDataReply = "I couldn't find data to plot for that query. Try asking about " +
		"temperature or salinity in the Arabian Sea or Bay of Bengal."

	plottingUnavailableReply = "Graph generation isn't available right now. I can still " +
		"answer data questions in text."
)

// graphKeywords route a query to the plotting path instead of the answer
// pipeline.
var graphKeywords = []string{"plot", "graph", "chart"}

// Server handles the chat API.
type Server struct {
	resolver    Resolver
	history     HistoryStore
	grapher     Grapher
	graphsDir   string
	historySize int
	limiter     *rate.Limiter
}

// Options configures the server.
type Options struct {
	GraphsDir   string
	HistorySize int
	RateLimit   float64
	RateBurst   int
}

// NewServer assembles the chat server. history and grapher may be nil.
func NewServer(resolver Resolver, history HistoryStore, grapher Grapher, opts Options) *Server {
	if opts.HistorySize <= 0 {
		opts.HistorySize = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 20
	}
	return &Server{
		resolver:    resolver,
		history:     history,
		grapher:     grapher,
		graphsDir:   opts.GraphsDir,
		historySize: opts.HistorySize,
		limiter:     rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
	}
}

// Router builds the HTTP handler with all routes configured.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.rateLimit)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/chat", s.handleChat)

	if s.graphsDir != "" {
		r.Handle("/graphs/*", http.StripPrefix("/graphs/", http.FileServer(http.Dir(s.graphsDir))))
	}

	return r
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Response string `json:"response"`
	GraphURL string `json:"graph_url,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	ctx := r.Context()

	var resp chatResponse
	if wantsGraph(query) {
		resp = s.plot(ctx, query)
	} else {
		resp.Response = s.resolver.Resolve(ctx, query, s.memory(ctx))
	}

	if s.history != nil {
		if _, err := s.history.SaveInteraction(ctx, query, resp.Response); err != nil {
			zap.L().Warn("failed to save interaction", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) plot(ctx context.Context, query string) chatResponse {
	if s.grapher == nil {
		return chatResponse{Response: plottingUnavailableReply}
	}

	records, err := s.resolver.RawRecords(ctx, query)
	if err != nil {
		zap.L().Error("raw record fetch failed", zap.Error(err), zap.String("query", query))
		return chatResponse{Response: noPlotDataReply}
	}
	if len(records) == 0 {
		return chatResponse{Response: noPlotDataReply}
	}

	file, err := s.grapher.Render(records, query)
	if err != nil {
		zap.L().Error("graph render failed", zap.Error(err), zap.String("query", query))
		return chatResponse{Response: noPlotDataReply}
	}

	return chatResponse{
		Response: "Here's the visualization of the requested data.",
		GraphURL: "/graphs/" + file,
	}
}

// memory converts recent history into generator conversation turns.
func (s *Server) memory(ctx context.Context) []model.ChatTurn {
	if s.history == nil {
		return nil
	}
	past, err := s.history.RecentInteractions(ctx, s.historySize)
	if err != nil {
		zap.L().Warn("failed to load chat history", zap.Error(err))
		return nil
	}
	turns := make([]model.ChatTurn, 0, len(past)*2)
	for _, it := range past {
		turns = append(turns,
			model.ChatTurn{Role: "user", Content: it.Query},
			model.ChatTurn{Role: "assistant", Content: it.Response},
		)
	}
	return turns
}

func wantsGraph(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range graphKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
