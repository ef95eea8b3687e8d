package main

import (
	"codeberg.org/hairswap/server/hairswap/credits"
	"codeberg.org/hairswap/server/hairswap/users"
	"codeberg.org/hairswap/server/internal/config"
	"codeberg.org/hairswap/server/internal/gemini"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db         *pgxpool.Pool
	config     *config.Config
	userRepo   *users.Repository
	creditRepo *credits.Repository
	generator  *gemini.Client
	router     *gin.Engine
}
