package driver

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// ConnectDB opens the configured database. DB_DRIVER is "mysql" in
// production and "sqlite3" for local runs; DB_DSN is the driver DSN.
func ConnectDB() *sql.DB {
	driverName := os.Getenv("DB_DRIVER")
	if driverName == "" {
		driverName = "mysql"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is not set")
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Fatal("Error opening database:", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	return db
}
