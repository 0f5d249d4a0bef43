package postgre

import (
	"database/sql"

	"seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = &implRepository{}

func New(l log.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
