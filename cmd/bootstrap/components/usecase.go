package components

import (
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/slot"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewSlotEngine,
	NewReservationFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
		NewRoomCommands,
		NewAdminCommands,
		commands.NewAuditUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		NewReservationQueries,
		queries.NewScheduleQueries,
		queries.NewAuditQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewSlotEngine builds the selection engine from the operating hours in config.
func NewSlotEngine(cfg config.Config, loc *time.Location) (*slot.Engine, error) {
	cal, err := slot.NewCalendar(cfg.App.OpeningHour, cfg.App.ClosingHour)
	if err != nil {
		return nil, err
	}
	rules := slot.Rules{OpeningFloor: cal.Opening()}
	return slot.NewEngine(cal, rules, cfg.App.MaxRangeSlots, loc), nil
}

func NewReservationFactory(cfg config.Config, clk clock.Clock) *reservation.Factory {
	return reservation.NewFactory(clk, reservation.Window{
		Lookback:    cfg.App.LookbackGrace,
		Horizon:     cfg.App.BookingHorizon,
		MaxDuration: time.Duration(cfg.App.MaxRangeSlots) * time.Hour,
	})
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	engine *slot.Engine,
	factory *reservation.Factory,
	locker commands.SubmissionLocker,
	cfg config.Config,
	clk clock.Clock,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(uow, engine, factory, locker, cfg.App.SubmissionLock, clk)
}

func NewRoomCommands(uow shared.UnitOfWork, storage commands.ImageStorage, cfg config.Config, clk clock.Clock) commands.RoomCommands {
	return commands.NewRoomUseCase(uow, storage, cfg.Storage.MaxBytes, clk)
}

func NewAdminCommands(cfg config.Config, jwtService *jwt.Service) (commands.AdminCommands, error) {
	if err := password.ValidateHash(cfg.Admin.PasswordHash); err != nil {
		return nil, errs.Wrap(err, "ADMIN_PASSWORD_HASH")
	}
	return commands.NewAdminCommands(cfg.Admin.PasswordHash, jwtService), nil
}

func NewReservationQueries(reservations queries.ReservationReadStore, rooms queries.RoomReadStore, clk clock.Clock, cfg config.Config) queries.ReservationQueries {
	return queries.NewReservationQueries(reservations, rooms, clk, cfg.App.BookingHorizon)
}
