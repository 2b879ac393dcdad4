package repos

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an operation targets an id with no row.
var ErrNotFound = errors.New("record not found")

// OpenDB connects to the listing store. driver is "sqlite" (local files and
// ":memory:" test databases) or "mysql" (the provisioned production store).
// A failed ping here is fatal to the caller; the service must not come up
// without its store.
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case "mysql":
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		// UPDATE must report matched rows, not changed rows, so writing an
		// identical payload to an existing id stays distinguishable from a
		// missing id.
		cfg.ClientFoundRows = true
		dsn = cfg.FormatDSN()
	case "sqlite":
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	// The MySQL schema is provisioned out of band; only the local sqlite
	// store is created and seeded here.
	if driver == "sqlite" {
		if err := ensureSchema(db); err != nil {
			return nil, err
		}
		if err := seedIfEmpty(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS cars(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  car_name TEXT NOT NULL,
  car_model TEXT NOT NULL,
  car_year INTEGER NOT NULL,
  location TEXT NOT NULL,
  address TEXT NOT NULL,
  price INTEGER NOT NULL,
  type TEXT NOT NULL,
  sold INTEGER NOT NULL DEFAULT 0,
  image TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cars_type     ON cars(type);
CREATE INDEX IF NOT EXISTS idx_cars_location ON cars(location);

CREATE TABLE IF NOT EXISTS admins(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contact_form(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  message TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM admins`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default admin and demo cars")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO admins(username,email,password) VALUES
	  ('admin','admin@mndmotors.test','adminPassword')`)

	tx.MustExec(`INSERT INTO cars(car_name,car_model,car_year,location,address,price,type,sold,image) VALUES
	  ('Maruti Swift','VXI',2021,'Rajkot','150 Feet Ring Road, Rajkot',650000,'Hatchback',0,'https://images.example.com/swift.jpg'),
	  ('Hyundai Creta','SX',2022,'Surat','Adajan Road, Surat',1750000,'SUV',0,'https://images.example.com/creta.jpg'),
	  ('BMW 7 Series','740i',2023,'Ahmedabad','SG Highway, Ahmedabad',24500000,'Sedan',1,'https://images.example.com/bmw7.jpg')`)

	return tx.Commit()
}
