package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/fyp-portal/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration returns a migrated database. TEST_DB_DSN
// points at an existing server; otherwise a postgres:15 container is started.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb := migrated(dsn)
		return gdb, func() { closeDB(gdb) }
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "fyp_portal",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/fyp_portal?sslmode=disable", host, port.Port())
	gdb := migrated(dsn)

	cleanup := func() {
		closeDB(gdb)
		_ = pg.Terminate(ctx)
	}
	return gdb, cleanup
}

// waitReady pings through lib/pq until the server accepts connections.
func waitReady(dsn string) {
	var (
		sqlDB *sql.DB
		err   error
	)
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			_ = sqlDB.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}

// migrated opens gorm through pgx so TranslateError recognises unique
// violations, then applies the schema.
func migrated(dsn string) *gorm.DB {
	waitReady(dsn)
	gdb, err := gorm.Open(postgres.Open(dsn), db.GormConfig())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	return gdb
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Truncate empties every portal table between tests.
func Truncate(gdb *gorm.DB) error {
	return gdb.Exec(`TRUNCATE submission_reviews, submissions, access_requests, project_tags,
		project_attachments, projects, tags, audit_logs, users RESTART IDENTITY CASCADE`).Error
}
