package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ews-reports/internal/config"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
)

// Database holds the storage backend selected at startup. Exactly one of
// Mongo/SQL is set for the managed backends; the memory backend carries
// no connection at all.
type Database struct {
	Backend Backend
	Mongo   *mongo.Database
	SQL     *sql.DB

	client *mongo.Client
}

// NewDatabase connects to the configured backend and registers the
// disconnect hook with the Fx lifecycle.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*Database, error) {
	switch Backend(cfg.StorageBackend) {
	case BackendMemory:
		log.Info("using in-memory storage, data will not survive a restart")
		return &Database{Backend: BackendMemory}, nil

	case BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("mongo ping: %w", err)
		}
		log.Info("connected to MongoDB", zap.String("database", cfg.DBName))

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Info("disconnecting from MongoDB")
				return client.Disconnect(ctx)
			},
		})

		return &Database{
			Backend: BackendMongo,
			Mongo:   client.Database(cfg.DBName),
			client:  client,
		}, nil

	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}

		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres open: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("postgres ping: %w", err)
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)

		if err := bootstrapSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("postgres schema bootstrap: %w", err)
		}
		log.Info("connected to Postgres")

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Info("closing Postgres connection pool")
				return db.Close()
			},
		})

		return &Database{Backend: BackendPostgres, SQL: db}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Ping reports whether the backing store is reachable. The memory backend
// is always healthy.
func (d *Database) Ping(ctx context.Context) error {
	switch d.Backend {
	case BackendMongo:
		return d.client.Ping(ctx, nil)
	case BackendPostgres:
		return d.SQL.PingContext(ctx)
	default:
		return nil
	}
}
