// Package main runs the fittrack MCP server over stdio (for local assistant use).
// The same MCP server is also mounted on the API at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	fitmcp "github.com/2beens/fittrack/internal/fitness/mcp"
	"github.com/2beens/fittrack/internal/gateway"
	"github.com/2beens/fittrack/internal/logging"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the protocol, logs go to stderr
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	log.SetOutput(os.Stderr)

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.Secrets.PostgresPassword,
		MaxConns:   int32(cfg.PostgresPoolSize),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	server := fitmcp.NewServer(gateway.New(dbPool, nil))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error(err)
	}
}
