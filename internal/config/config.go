package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string
	DBDSN    string
	LogFile  string
}

func Load() Config {
	// Local setups keep connection settings in a .env file; absence is fine.
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// sqlite file in project root; MySQL deployments set both DB_DRIVER
		// and DB_DSN, e.g. "user:pass@tcp(127.0.0.1:3306)/mnd_motors"
		dsn = "mndmotors.db"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./mndmotors.log"
	}

	cfg := Config{Port: port, DBDriver: driver, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDriver, cfg.DBDSN, cfg.LogFile)
	return cfg
}
