package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-monitor/internal/domain/model"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// OperationRecorder receives the outcome of each cache command issued by the
// probe.
type OperationRecorder interface {
	RecordCacheOperation(operation string, duration time.Duration, hit bool, err error)
}

// Client is the cache command surface the probe needs. pkg/redis.Client
// satisfies it.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Stats() *goredis.PoolStats
}

// RedisProbeGateway probes Redis with a set, get and delete round trip. A
// reachable server that corrupts or loses the value fails the probe just as
// an unreachable one does.
type RedisProbeGateway struct {
	client   Client
	recorder OperationRecorder
}

var _ ProbeGateway = (*RedisProbeGateway)(nil)

// NewRedisProbeGateway creates a new Redis probe gateway. The recorder may
// be nil.
func NewRedisProbeGateway(client Client, recorder OperationRecorder) *RedisProbeGateway {
	return &RedisProbeGateway{client: client, recorder: recorder}
}

func (gateway *RedisProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	key := "monitor:cache:probe:" + uuid.New().String()
	value := strconv.FormatInt(time.Now().UnixNano(), 10)

	start := time.Now()
	err := gateway.client.Set(ctx, key, value, time.Minute)
	gateway.record("set", time.Since(start), false, err)
	if err != nil {
		return model.ProbeFinding{}, fmt.Errorf("set operation failed: %w", err)
	}

	start = time.Now()
	got, err := gateway.client.Get(ctx, key)
	gateway.record("get", time.Since(start), err == nil, err)
	if err != nil {
		return model.ProbeFinding{}, fmt.Errorf("get operation failed: %w", err)
	}
	if got != value {
		return model.ProbeFinding{}, fmt.Errorf("value mismatch: expected %s, got %s", value, got)
	}

	start = time.Now()
	err = gateway.client.Delete(ctx, key)
	gateway.record("delete", time.Since(start), false, err)
	if err != nil {
		return model.ProbeFinding{}, fmt.Errorf("delete operation failed: %w", err)
	}

	stats := gateway.client.Stats()
	return model.ProbeFinding{
		Status: model.StatusHealthy,
		Details: map[string]string{
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"hits":        strconv.FormatUint(uint64(stats.Hits), 10),
			"misses":      strconv.FormatUint(uint64(stats.Misses), 10),
		},
	}, nil
}

func (gateway *RedisProbeGateway) record(operation string, duration time.Duration, hit bool, err error) {
	if gateway.recorder != nil {
		gateway.recorder.RecordCacheOperation(operation, duration, hit, err)
	}
}
