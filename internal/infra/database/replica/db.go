package replica

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"go-monitor/pkg/resource"
)

var Db *sql.DB

func init() {
	host := resource.GetString("app.db.replica.host")
	port := resource.GetString("app.db.replica.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, username, password, database, schema)

	// sql.Open only validates the DSN, the first probe establishes the
	// actual connection.
	var err error
	Db, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open replica database: %v", err)
	}

	Db.SetMaxOpenConns(resource.GetInt("app.db.replica.pool.max-open"))
	Db.SetMaxIdleConns(resource.GetInt("app.db.replica.pool.max-idle"))
}
