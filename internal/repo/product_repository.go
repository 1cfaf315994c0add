package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/models"
)

// ErrUpstreamUnavailable is returned when the product snapshot could not be fetched.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ProductRepository defines the interface for reading the product snapshot.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.UpstreamRecord, error)
}
