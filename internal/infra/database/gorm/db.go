package gorm

import (
	"fmt"
	"log"

	"go-monitor/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Db *gorm.DB

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	// The automatic ping is disabled so the service still boots when the
	// database is down. Connectivity is judged by the health probes instead.
	var err error
	Db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	sqlDb, err := Db.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}

	sqlDb.SetMaxOpenConns(resource.GetInt("app.db.pool.max-open"))
	sqlDb.SetMaxIdleConns(resource.GetInt("app.db.pool.max-idle"))
	sqlDb.SetConnMaxLifetime(resource.GetDuration("app.db.pool.max-lifetime"))
}
