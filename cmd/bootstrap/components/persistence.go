package components

import (
	"invoice-admin/internal/infra/cache"
	"invoice-admin/internal/infra/db"
	"invoice-admin/internal/infra/readstore"
	"invoice-admin/internal/infra/writerepo"
	"invoice-admin/internal/pkg/config"
	"invoice-admin/internal/usecase/commands"
	"invoice-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewListingCache,

		// Invoice
		fx.Annotate(
			writerepo.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),

		// User
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewListingCache(client *redis.Client, cfg config.Config) (*cache.ListingCache, queries.ListingCache, commands.ListingInvalidator) {
	c := cache.NewListingCache(client, cfg.Redis)
	return c, c, c
}
