package requestrepo

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/request"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements ports.RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records aggregates touched within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM pending-request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly issued pending request.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.PendingRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a request's resolution.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.PendingRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pending request by its correlation identifier.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.PendingRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllIssuedBefore retrieves Issued requests created before the cutoff.
func (r *GormRequestRepository) GetAllIssuedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*request.PendingRequest, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND created_at < ?", int(request.Issued), cutoff).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.PendingRequest, 0, len(dtos))
	for _, dto := range dtos {
		pending, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		requests = append(requests, pending)
	}

	return requests, nil
}
