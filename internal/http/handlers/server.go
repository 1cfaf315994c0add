package handlers

import (
	"log/slog"

	repo "github.com/rogerio-castellano/electronics-catalog-proxy/internal/repo"
)

// Server holds the dependencies shared by the HTTP handlers.
// It carries no per-request state.
type Server struct {
	productRepo repo.ProductRepository
	logger      *slog.Logger
}

func NewServer(productRepo repo.ProductRepository, logger *slog.Logger) *Server {
	return &Server{
		productRepo: productRepo,
		logger:      logger,
	}
}
