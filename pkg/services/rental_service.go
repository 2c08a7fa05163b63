package services

import (
	"context"
	"fmt"

	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/agentmesh/hcs-indexer/pkg/models"
)

// RentalService serves the materialized rental lifecycle records.
type RentalService struct {
	client *ent.Client
}

// NewRentalService creates a new RentalService
func NewRentalService(client *ent.Client) *RentalService {
	return &RentalService{client: client}
}

// GetRental retrieves a single rental by ID
func (s *RentalService) GetRental(ctx context.Context, rentalID string) (*ent.Rental, error) {
	if rentalID == "" {
		return nil, NewValidationError("rental_id", "required")
	}

	r, err := s.client.Rental.Get(ctx, rentalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return r, nil
}

// ListRentals lists rentals with filtering and pagination, most recently
// initiated first
func (s *RentalService) ListRentals(ctx context.Context, filters models.RentalFilters) (*models.RentalListResponse, error) {
	query := s.client.Rental.Query()
	if filters.AgentID != "" {
		query = query.Where(rental.AgentIDEQ(filters.AgentID))
	}
	if filters.Status != "" {
		switch filters.Status {
		case string(rental.StatusInitiated), string(rental.StatusCompleted):
			query = query.Where(rental.StatusEQ(rental.Status(filters.Status)))
		default:
			return nil, NewValidationError("status", "must be initiated or completed")
		}
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rentals: %w", err)
	}

	limit, offset := models.NormalizePage(filters.Limit, filters.Offset)
	rentals, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(rental.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}

	return &models.RentalListResponse{
		Items:  rentals,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
