package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-monitor/internal/domain/model"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	values    map[string]string
	setErr    error
	getErr    error
	deleteErr error
	getResult string
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: make(map[string]string)}
}

func (c *fakeClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value.(string)
	return nil
}

func (c *fakeClient) Get(_ context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	if c.getResult != "" {
		return c.getResult, nil
	}
	return c.values[key], nil
}

func (c *fakeClient) Delete(_ context.Context, keys ...string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

func (c *fakeClient) Stats() *goredis.PoolStats {
	return &goredis.PoolStats{TotalConns: 3, IdleConns: 2, Hits: 5, Misses: 1}
}

type operationRecord struct {
	operation string
	hit       bool
	err       error
}

type fakeOperationRecorder struct {
	records []operationRecord
}

func (r *fakeOperationRecorder) RecordCacheOperation(operation string, _ time.Duration, hit bool, err error) {
	r.records = append(r.records, operationRecord{operation: operation, hit: hit, err: err})
}

func TestRedisProbeGateway_RoundTrip(t *testing.T) {
	client := newFakeClient()
	recorder := &fakeOperationRecorder{}
	gateway := NewRedisProbeGateway(client, recorder)

	finding, err := gateway.Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.StatusHealthy, finding.Status)
	assert.Equal(t, "3", finding.Details["total_conns"])
	assert.Equal(t, "2", finding.Details["idle_conns"])
	assert.Equal(t, "5", finding.Details["hits"])
	assert.Equal(t, "1", finding.Details["misses"])
	assert.Empty(t, client.values, "probe cleans up its key")

	require.Len(t, recorder.records, 3)
	assert.Equal(t, "set", recorder.records[0].operation)
	assert.Equal(t, "get", recorder.records[1].operation)
	assert.True(t, recorder.records[1].hit)
	assert.Equal(t, "delete", recorder.records[2].operation)
}

func TestRedisProbeGateway_Failures(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeClient
		wantErr string
	}{
		{
			name:    "set fails",
			client:  &fakeClient{values: map[string]string{}, setErr: errors.New("connection refused")},
			wantErr: "set operation failed",
		},
		{
			name:    "get fails",
			client:  &fakeClient{values: map[string]string{}, getErr: errors.New("read timeout")},
			wantErr: "get operation failed",
		},
		{
			name:    "value corrupted",
			client:  &fakeClient{values: map[string]string{}, getResult: "garbage"},
			wantErr: "value mismatch",
		},
		{
			name:    "delete fails",
			client:  &fakeClient{values: map[string]string{}, deleteErr: errors.New("connection reset")},
			wantErr: "delete operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := NewRedisProbeGateway(tt.client, nil)

			_, err := gateway.Probe(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRedisProbeGateway_RecordsFailedOperation(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("read timeout")
	recorder := &fakeOperationRecorder{}
	gateway := NewRedisProbeGateway(client, recorder)

	_, err := gateway.Probe(context.Background())

	require.Error(t, err)
	require.Len(t, recorder.records, 2)
	assert.NoError(t, recorder.records[0].err)
	assert.False(t, recorder.records[1].hit)
	assert.Error(t, recorder.records[1].err)
}
