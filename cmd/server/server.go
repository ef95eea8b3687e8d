package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/hairswap/server/hairswap/credits"
	"codeberg.org/hairswap/server/hairswap/users"
	"codeberg.org/hairswap/server/internal/config"
	"codeberg.org/hairswap/server/internal/gemini"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small for hosted pooler compatibility
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for PgBouncer in transaction mode: prepared
	// statements cause connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	generator, err := gemini.NewClient()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:         db,
		config:     cfg,
		userRepo:   users.NewRepository(db),
		creditRepo: credits.NewRepository(db),
		generator:  generator,
		router:     gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server, nil
}
