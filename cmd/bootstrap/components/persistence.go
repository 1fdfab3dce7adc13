package components

import (
	"mine-dine/internal/infra/db"
	"mine-dine/internal/infra/readstore"
	"mine-dine/internal/infra/repository"
	"mine-dine/internal/infra/uow"
	"mine-dine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewDinnerReadStore,
			fx.As(new(queries.DinnerReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewGuestReviewReadStore,
			fx.As(new(queries.GuestReviewReadStore)),
		),
		repository.NewNotificationRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
