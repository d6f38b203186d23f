// Package outboxrepo stores booking events waiting to be published.
package outboxrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is a row of the outbox_messages table. The payload is
// stored as text cast to jsonb so it binds the same way under every driver.
type OutboxMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	AggregateID string    `gorm:"size:32;not null;index"`
	EventType   string    `gorm:"size:64;not null"`
	Payload     string    `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          m.ID.Bytes(),
		AggregateID: m.AggregateID,
		EventType:   m.EventType,
		Payload:     string(m.Payload),
		OccurredAt:  m.OccurredAt,
		PublishedAt: m.PublishedAt,
	}
}

func toDomain(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		AggregateID: dto.AggregateID,
		EventType:   dto.EventType,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
