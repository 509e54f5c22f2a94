package postgres

import (
	"github.com/bpmon-network/bpmon/internal/postgres"
	"github.com/bpmon-network/bpmon/modules/voters/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}
