package postgre

import (
	"database/sql"

	"seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/encrypter"
	"seatwatch-srv/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	enc encrypter.IEncrypter
}

var _ repository.Repository = &implRepository{}

// New returns the user repository. Email and push token columns are
// stored encrypted; enc must use the service-wide key.
func New(l log.Logger, db *sql.DB, enc encrypter.IEncrypter) repository.Repository {
	return &implRepository{
		db:  db,
		l:   l,
		enc: enc,
	}
}
