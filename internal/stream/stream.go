// Package stream appends settled rounds to a Redis stream for external
// consumers.
package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/logger"
)

// Client is the subset of the Redis client used by the sink
type Client interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisSink implements round.Sink on top of XADD
type RedisSink struct {
	client Client
	stream string
	maxLen int64
}

// NewClient connects to addr and verifies the connection
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", ErrContextPingRedis, err)
	}
	logger.FromContext(ctx).Info(LogMsgRedisConnected, "addr", addr)
	return rdb, nil
}

// NewRedisSink creates a sink writing to stream. An empty name uses the default.
func NewRedisSink(client Client, stream string) *RedisSink {
	if stream == "" {
		stream = DefaultStreamName
	}
	return &RedisSink{client: client, stream: stream, maxLen: DefaultMaxLen}
}

// Accept appends one entry per round. The stream is trimmed approximately to maxLen.
func (s *RedisSink) Accept(ctx context.Context, rec domain.RoundRecord, balanceDelta int64) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextMarshalRecord, err)
	}

	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			FieldRoundID:      rec.RoundID.String(),
			FieldRecord:       string(data),
			FieldBalanceDelta: balanceDelta,
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextAppendStream, err)
	}

	logger.FromContext(ctx).Debug(LogMsgRoundStreamed, "round_id", rec.RoundID, "entry_id", id)
	return nil
}

// Ping checks the connection
func (s *RedisSink) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
