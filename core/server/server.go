package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"banking-bpo/core/config"
	"banking-bpo/core/pipeline"
	"banking-bpo/core/store"
)

// Assistant generates the LLM-written prose the dashboard offers on demand.
type Assistant interface {
	Summary(ctx context.Context, documentInfo, verification any) (string, error)
	PaymentInstructions(ctx context.Context, customerName, accountNumber string, amount float64, creditor string) (string, error)
}

type Server struct {
	cfg       config.Config
	store     *store.Store
	processor *pipeline.Processor
	assistant Assistant
}

// New wires the dashboard server. Store, processor and assistant are built
// once by main and injected here.
func New(cfg config.Config, s *store.Store, p *pipeline.Processor, a Assistant) *http.Server {
	srv := &Server{
		cfg:       cfg,
		store:     s,
		processor: p,
		assistant: a,
	}

	return &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     srv.RegisterRoutes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// Document processing calls the extractor within the request, so the
		// write timeout must outlast it.
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
	}
}
