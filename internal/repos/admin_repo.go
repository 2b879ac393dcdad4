package repos

import (
	"database/sql"
	"errors"

	"mndmotors/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AdminRepo struct{ db *sqlx.DB }

func NewAdminRepo(db *sqlx.DB) *AdminRepo { return &AdminRepo{db: db} }

// ByCredentials looks up an admin matching both email and password exactly.
// The stored password is compared verbatim by the database, matching the
// legacy login behavior; an unknown email and a wrong password both come back
// as ErrNotFound, deliberately indistinguishable.
func (r *AdminRepo) ByCredentials(email, password string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.Get(&a, `SELECT id, username, email, password FROM admins WHERE email=? AND password=?`, email, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
