package bookingrepo

import (
	"context"
	"errors"
	"strings"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a booking repository. tracker may be nil
// for read-only use outside a unit of work.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new booking.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update rewrites the mutable columns of an existing booking, zero values included.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bookingId", aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a booking by its internal key.
func (r *GormBookingRepository) Get(ctx context.Context, key kernel.UUID) (*booking.Booking, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "id = ?", key.Bytes(), key)
}

// GetByBookingID retrieves a booking by its public identifier.
func (r *GormBookingRepository) GetByBookingID(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "booking_id = ?", id.String(), id)
}

// GetByBookingIDForUpdate is GetByBookingID with SELECT ... FOR UPDATE.
func (r *GormBookingRepository) GetByBookingIDForUpdate(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.first(locked, "booking_id = ?", id.String(), id)
}

// List returns one page of matching bookings, newest first, ties in insertion order.
func (r *GormBookingRepository) List(
	ctx context.Context,
	filter ports.BookingFilter,
	page ports.PageRequest,
) (ports.BookingPage, error) {
	query := r.db.WithContext(ctx).Model(&BookingDTO{})

	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.OwnerIDContains != "" {
		query = query.Where("owner_id LIKE ?", containsPattern(filter.OwnerIDContains))
	}
	if filter.BookingIDContains != "" {
		query = query.Where("booking_id LIKE ?", containsPattern(filter.BookingIDContains))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.BookingPage{}, err
	}

	result := ports.BookingPage{Items: make([]*booking.Booking, 0), Total: total}
	if page.Size <= 0 || int64(page.Offset()) >= total {
		return result, nil
	}

	var dtos []BookingDTO
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("seq ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&dtos).Error
	if err != nil {
		return ports.BookingPage{}, err
	}

	for _, dto := range dtos {
		b, mapErr := toDomain(dto)
		if mapErr != nil {
			return ports.BookingPage{}, mapErr
		}
		result.Items = append(result.Items, b)
	}

	return result, nil
}

func (r *GormBookingRepository) first(db *gorm.DB, condition string, value any, id any) (*booking.Booking, error) {
	var dto BookingDTO
	if err := db.First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bookingId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBookingRepository) track(aggregate *booking.Booking) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.Key(), aggregate)
	}
}

// containsPattern builds a LIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}
