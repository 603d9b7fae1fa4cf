package reservation

import (
	"context"
	"time"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

// storeTimeout bounds the allocation transaction so a stuck store call
// fails the request instead of hanging it.
const storeTimeout = 10 * time.Second

type Service struct {
	catalog   interfaces.CatalogRepository
	repo      interfaces.ReservationRepository
	publisher interfaces.EventPublisher
	logger    logger.Logger
	window    domain.HoldWindow
}

func NewService(
	catalog interfaces.CatalogRepository,
	repo interfaces.ReservationRepository,
	publisher interfaces.EventPublisher,
	logger logger.Logger,
	window domain.HoldWindow,
) *Service {
	return &Service{
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		window:    window,
	}
}

// Create validates the booking request and atomically assigns the
// lowest-numbered free table for the hold window, or reports that none
// is available. A lost race surfaces as Conflict and is retried once.
func (s *Service) Create(ctx context.Context, cmd interfaces.CreateReservationCommand) (*domain.ReservationSlip, error) {
	req, err := domain.NewReservationRequest(
		cmd.BranchID, cmd.CustomerName, cmd.Phone, cmd.PartySize,
		cmd.ArrivalDate, cmd.ArrivalTime, cmd.Notes,
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := s.catalog.BranchExists(ctx, req.BranchID); err != nil {
		return nil, err
	}

	slip := &domain.ReservationSlip{
		BranchID:     req.BranchID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		PartySize:    req.PartySize,
		ArrivalAt:    req.ArrivalAt,
		Notes:        req.Notes,
	}

	err = s.repo.Allocate(ctx, slip, s.window)
	if domain.KindOf(err) == domain.KindConflict {
		s.logger.Debug("allocation_retry", "Allocation raced, retrying once", "", map[string]interface{}{
			"branch_id": req.BranchID,
		})
		err = s.repo.Allocate(ctx, slip, s.window)
	}
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			s.logger.Error("db_transaction_failed", "Failed to allocate table", "", nil, err)
		}
		return nil, err
	}

	s.logger.Debug("reservation_created", "Table assigned", "", map[string]interface{}{
		"reservation_slip_id": slip.ID,
		"table_number":        slip.TableNumber,
	})

	msg := interfaces.ReservationCreatedMessage{
		ReservationSlipID: slip.ID,
		BranchID:          slip.BranchID,
		CustomerName:      slip.CustomerName,
		PartySize:         slip.PartySize,
		TableNumber:       slip.TableNumber,
		ArrivalAt:         slip.ArrivalAt,
	}
	if err := s.publisher.PublishReservationCreated(ctx, msg); err != nil {
		// The slip is already committed; the event is notification-only.
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish reservation event", "", nil, err)
	}

	return slip, nil
}
