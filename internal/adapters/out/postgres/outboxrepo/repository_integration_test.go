package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"parcel/internal/adapters/out/postgres/outboxrepo"
	"parcel/internal/adapters/out/postgres/pgtest"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.OutboxMessageDTO{}))
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func message(eventType string, occurredAt time.Time) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: "BK01J9Z3T6Y8M0Q4W2E5R7T9Y1U3",
		EventType:   eventType,
		Payload:     []byte(`{"eventType":"` + eventType + `"}`),
		OccurredAt:  occurredAt,
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_OldestFirst() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	created := message("booking.created", now)
	sameTime := message("booking.status_changed", now)
	later := message("booking.cancelled", now.Add(time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, later))
	suite.Require().NoError(suite.repository.Add(ctx, created, sameTime))

	messages, err := suite.repository.GetUnpublished(ctx, 10)

	suite.Require().NoError(err)
	suite.Require().Len(messages, 3)
	suite.True(created.ID.IsEqual(messages[0].ID))
	suite.True(sameTime.ID.IsEqual(messages[1].ID))
	suite.True(later.ID.IsEqual(messages[2].ID))
	suite.JSONEq(string(created.Payload), string(messages[0].Payload))
	suite.Nil(messages[0].PublishedAt)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished() {
	ctx := context.Background()
	first := message("booking.created", time.Now())
	second := message("booking.created", time.Now().Add(time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, first, second))

	suite.Require().NoError(suite.repository.MarkPublished(ctx, []kernel.UUID{first.ID}, time.Now()))

	messages, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.True(second.ID.IsEqual(messages[0].ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_SkipsLockedRows() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx,
		message("booking.created", time.Now()),
		message("booking.created", time.Now().Add(time.Second)),
	))

	tx := suite.db.Begin()
	defer tx.Rollback()
	held, err := outboxrepo.NewGormOutboxRepository(tx).GetUnpublished(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(held, 1)

	rest, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.False(held[0].ID.IsEqual(rest[0].ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_InvalidLimit() {
	_, err := suite.repository.GetUnpublished(context.Background(), 0)

	suite.Require().Error(err)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
