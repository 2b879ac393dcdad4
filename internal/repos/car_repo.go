package repos

import (
	"mndmotors/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CarRepo struct{ db *sqlx.DB }

func NewCarRepo(db *sqlx.DB) *CarRepo { return &CarRepo{db: db} }

// All returns every listing in store-natural order.
func (r *CarRepo) All() ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.Select(&out, `
	  SELECT id, car_name, car_model, car_year, location, address, price, type, sold, image
	  FROM cars
	`)
	return out, err
}

// Insert stores a new listing and returns its assigned id.
func (r *CarRepo) Insert(c domain.Car) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO cars(car_name, car_model, car_year, location, address, price, type, sold, image)
	  VALUES(?,?,?,?,?,?,?,?,?)
	`, c.Name, c.Model, c.Year, c.Location, c.Address, c.Price, c.Type, c.Sold, c.Image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every field of the listing with the given id.
// Returns ErrNotFound when no row matched.
func (r *CarRepo) Update(id int64, c domain.Car) error {
	res, err := r.db.Exec(`
	  UPDATE cars
	  SET car_name=?, car_model=?, car_year=?, location=?, address=?, price=?, type=?, sold=?, image=?
	  WHERE id=?
	`, c.Name, c.Model, c.Year, c.Location, c.Address, c.Price, c.Type, c.Sold, c.Image, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the listing permanently. Returns ErrNotFound when no row matched.
func (r *CarRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM cars WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
