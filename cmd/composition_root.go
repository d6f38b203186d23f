package cmd

import (
	"fmt"
	"log/slog"

	httpin "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/amqp"
	"parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/bookingrepo"
	"parcel/internal/adapters/out/postgres/customerrepo"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/ports"
	"parcel/internal/jobs"
	"parcel/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.New(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() *commands.CreateBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateBookingCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() *commands.CancelBookingCommandHandler {
	h := commands.NewCancelBookingCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateBookingStatusCommandHandler() *commands.UpdateBookingStatusCommandHandler {
	h := commands.NewUpdateBookingStatusCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateBookingScheduleCommandHandler() *commands.UpdateBookingScheduleCommandHandler {
	h := commands.NewUpdateBookingScheduleCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateReviseBookingParcelCommandHandler() *commands.ReviseBookingParcelCommandHandler {
	h := commands.NewReviseBookingParcelCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() *commands.RecordPaymentCommandHandler {
	h := commands.NewRecordPaymentCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(
	publisher ports.EventPublisher,
) *commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRelayOutboxCommandHandler(f, publisher)
	return &h
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.bookingReader(), c.customerReader())
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.bookingReader(), c.customerReader(), c.cfg.PageSize)
}

func (c *CompositionRoot) CreateQuoteCostQueryHandler() queries.QuoteCostQueryHandler {
	return queries.NewQuoteCostQueryHandler()
}

// CreateHTTPServer builds the echo instance serving the booking API.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server, err := httpin.NewServer(httpin.Handlers{
		CreateBooking:         c.CreateCreateBookingCommandHandler(),
		CancelBooking:         c.CreateCancelBookingCommandHandler(),
		UpdateBookingStatus:   c.CreateUpdateBookingStatusCommandHandler(),
		UpdateBookingSchedule: c.CreateUpdateBookingScheduleCommandHandler(),
		ReviseBookingParcel:   c.CreateReviseBookingParcelCommandHandler(),
		RecordPayment:         c.CreateRecordPaymentCommandHandler(),
		GetBooking:            c.CreateGetBookingQueryHandler(),
		ListBookings:          c.CreateListBookingsQueryHandler(),
		QuoteCost:             c.CreateQuoteCostQueryHandler(),
	}, c.metrics, c.logger)
	if err != nil {
		return nil, err
	}

	auth, err := httpin.NewAuthenticator(c.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(server, auth, c.metrics, c.logger, httpin.RouterConfig{
		RateLimitRPS:   c.cfg.RateLimitRPS,
		RateLimitBurst: c.cfg.RateLimitBurst,
	}), nil
}

// CreateJobManager wires the outbox relay to the broker. The returned closer
// releases the broker connection.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, func() error, error) {
	publisher, err := amqp.NewPublisher(c.cfg.AMQPURL, c.cfg.AMQPExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to the event broker: %w", err)
	}

	cmd, err := commands.NewRelayOutboxCommand(c.cfg.OutboxBatchSize)
	if err != nil {
		_ = publisher.Close()
		return nil, nil, err
	}

	job := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		cmd,
		c.cfg.OutboxRelaySchedule,
		c.logger,
		c.metrics.AddOutboxPublished,
	)
	return jobs.NewJobManager(job), publisher.Close, nil
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

// Queries read outside of a transaction, so their repositories track nothing.
func (c *CompositionRoot) bookingReader() queries.BookingReader {
	return bookingrepo.NewGormBookingRepository(c.gormDB, nil)
}

func (c *CompositionRoot) customerReader() queries.CustomerReader {
	return customerrepo.NewGormCustomerRepository(c.gormDB)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
