package postgres

import (
	"github.com/bpmon-network/bpmon/internal/postgres"
	"github.com/bpmon-network/bpmon/modules/nodecheck/repository/postgres/gen"
)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}
