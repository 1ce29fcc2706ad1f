package database

import (
	"agenda-service/internal/app/config"
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func PostgresConnectionString(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode,
	)
}

func NewPostgresPool(ctx context.Context, driverConfig *config.DriverConfig) *pgxpool.Pool {
	poolConfig, err := pgxpool.ParseConfig(PostgresConnectionString(driverConfig))
	if err != nil {
		log.Fatalf("Failed to parse postgres connection string: %s", err.Error())
	}

	if driverConfig.PostgresDB.MaxConns > 0 {
		poolConfig.MaxConns = int32(driverConfig.PostgresDB.MaxConns)
	}
	if driverConfig.PostgresDB.MinConns > 0 {
		poolConfig.MinConns = int32(driverConfig.PostgresDB.MinConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("Failed to open postgres connection pool: %s", err.Error())
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return pool
}
