package migration

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

const dialect = "postgres"

//go:embed *.sql
var files embed.FS

func source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       ".",
	}
}

// Up applies every pending migration and returns how many ran.
func Up(db *sql.DB, log *logrus.Logger) (int, error) {
	n, err := migrate.Exec(db, dialect, source(), migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	log.Infof("Applied %d migrations", n)
	return n, nil
}

// Down rolls back at most steps migrations; zero rolls back all of them.
func Down(db *sql.DB, steps int, log *logrus.Logger) (int, error) {
	n, err := migrate.ExecMax(db, dialect, source(), migrate.Down, steps)
	if err != nil {
		return 0, fmt.Errorf("rollback migrations: %w", err)
	}
	log.Infof("Rolled back %d migrations", n)
	return n, nil
}

type Status struct {
	ID        string
	AppliedAt string
}

func Statuses(db *sql.DB) ([]Status, error) {
	migrations, err := source().FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("find migrations: %w", err)
	}

	records, err := migrate.GetMigrationRecords(db, dialect)
	if err != nil {
		return nil, fmt.Errorf("read migration records: %w", err)
	}
	applied := make(map[string]string, len(records))
	for _, record := range records {
		applied[record.Id] = record.AppliedAt.UTC().Format("2006-01-02 15:04:05")
	}

	statuses := make([]Status, 0, len(migrations))
	for _, m := range migrations {
		statuses = append(statuses, Status{ID: m.Id, AppliedAt: applied[m.Id]})
	}
	return statuses, nil
}
