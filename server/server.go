// SPDX-License-Identifier: MIT

// Package server exposes collation over HTTP with gin.
//
// Routes:
//
//	POST   /v1/collations      collate witnesses, store and return the run
//	GET    /v1/collations      list stored runs
//	GET    /v1/collations/:id  fetch one run
//	DELETE /v1/collations/:id  delete one run
//	GET    /healthz            liveness
//	GET    /metrics            Prometheus exposition (when a gatherer is set)
//
// Every request runs its own collation with its own graph.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvcollate/collation"
	"github.com/katalvlaran/lvcollate/metrics"
	"github.com/katalvlaran/lvcollate/store"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

// WitnessRequest is one witness of a collation request.
type WitnessRequest struct {
	Sigil string `json:"sigil"`
	Text  string `json:"text"`
}

// CollateRequest is the body of POST /v1/collations.
type CollateRequest struct {
	Witnesses []WitnessRequest `json:"witnesses"`
}

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	store      *store.Store
	logger     *slog.Logger
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	collateOps []collation.Option
	tokenOps   []token.Option
	now        func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records requests and alignments on m and serves g on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithCollationOptions applies opts to every collation.
func WithCollationOptions(opts ...collation.Option) Option {
	return func(s *Server) { s.collateOps = append(s.collateOps, opts...) }
}

// WithTokenizerOptions applies opts when tokenizing request witnesses.
func WithTokenizerOptions(opts ...token.Option) Option {
	return func(s *Server) { s.tokenOps = append(s.tokenOps, opts...) }
}

// New builds a server over st.
func New(st *store.Store, opts ...Option) *Server {
	s := &Server{
		store:  st,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router returns the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.observe())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	v1.POST("/collations", s.createCollation)
	v1.GET("/collations", s.listCollations)
	v1.GET("/collations/:id", s.getCollation)
	v1.DELETE("/collations/:id", s.deleteCollation)

	return r
}

func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		s.metrics.ObserveRequest(c.Request.Method, path, status)
		s.logger.Debug("request",
			"method", c.Request.Method, "path", path,
			"status", status, "duration", time.Since(start))
	}
}

func (s *Server) createCollation(c *gin.Context) {
	var req CollateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	// 1. Tokenize
	ws := make([]token.Witness, 0, len(req.Witnesses))
	for _, wr := range req.Witnesses {
		w, err := token.Tokenize(wr.Sigil, wr.Text, s.tokenOps...)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ws = append(ws, w)
	}

	// 2. Collate
	opts := append(slices.Clone(s.collateOps),
		collation.WithLogger(s.logger), collation.WithMetrics(s.metrics))
	res, err := collation.Collate(c.Request.Context(), ws, opts...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, collation.ErrNoWitnesses) ||
			errors.Is(err, variantgraph.ErrDuplicateWitness) {
			status = http.StatusBadRequest
		}
		s.logger.Warn("collation failed", "error", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// 3. Store
	rec := store.NewRecord(uuid.NewString(), res, s.now())
	if err := s.store.Put(rec); err != nil {
		s.logger.Error("store run", "id", rec.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store run"})
		return
	}
	s.logger.Info("collation stored", "id", rec.ID, "witnesses", len(ws))
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) listCollations(c *gin.Context) {
	recs, err := s.store.List()
	if err != nil {
		s.logger.Error("list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": recs})
}

func (s *Server) getCollation(c *gin.Context) {
	rec, err := s.store.Get(c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	case err != nil:
		s.logger.Error("get run", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read run"})
	default:
		c.JSON(http.StatusOK, rec)
	}
}

func (s *Server) deleteCollation(c *gin.Context) {
	err := s.store.Delete(c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	case err != nil:
		s.logger.Error("delete run", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete run"})
	default:
		c.Status(http.StatusNoContent)
	}
}
