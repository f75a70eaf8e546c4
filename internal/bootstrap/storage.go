package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/WheelShow_Go/internal/config"
	"github.com/osse101/WheelShow_Go/internal/database"
	"github.com/osse101/WheelShow_Go/internal/database/postgres"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
	"github.com/osse101/WheelShow_Go/internal/stream"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Storage holds the round log repository and the optional connections behind
// it. DBPool and Redis are nil when their feature is not configured.
type Storage struct {
	RoundRepo roundlog.Repository
	DBPool    *pgxpool.Pool
	Redis     *redis.Client
	RedisSink *stream.RedisSink
}

// InitializeStorage connects the round log store and the optional Redis
// stream. Without DB_HOST the round log lives in memory.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{}

	if cfg.UsesDatabase() {
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		s.DBPool = pool
		s.RoundRepo = postgres.NewRoundRepository(pool)
		slog.Info(LogMsgRoundLogPostgres, "host", cfg.DBHost, "db", cfg.DBName)
	} else {
		s.RoundRepo = roundlog.NewMemoryRepository()
		slog.Info(LogMsgRoundLogMemory)
	}

	if cfg.RedisAddr != "" {
		client, err := stream.NewClient(ctx, cfg.RedisAddr)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		s.Redis = client
		s.RedisSink = stream.NewRedisSink(client, cfg.RedisStream)
		slog.Info(LogMsgRedisSinkEnabled, "addr", cfg.RedisAddr, "stream", cfg.RedisStream)
	}

	return s, nil
}

// Close releases every open connection
func (s *Storage) Close() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "component", "redis", "error", err)
		}
	}
	if s.DBPool != nil {
		s.DBPool.Close()
	}
}

// LoadTable builds the outcome table from the configured override file
func LoadTable(cfg *config.Config) (*table.Table, error) {
	t, err := table.Load(cfg.TableConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTable, err)
	}
	slog.Info(LogMsgTableReady,
		"segments", t.SegmentCount(),
		"bet_options", len(t.BetOptions()))
	return t, nil
}
