package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiter_FirstRequestSetsExpiry(t *testing.T) {
	db, mock := redismock.NewClientMock()
	l := NewRedisLimiter(db, 5, time.Minute)

	mock.ExpectIncr("ratelimit:10.0.0.1").SetVal(1)
	mock.ExpectExpire("ratelimit:10.0.0.1", time.Minute).SetVal(true)

	allowed, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLimiter_OverLimitRejected(t *testing.T) {
	db, mock := redismock.NewClientMock()
	l := NewRedisLimiter(db, 5, time.Minute)

	mock.ExpectIncr("ratelimit:10.0.0.1").SetVal(6)

	allowed, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLimiter_AtLimitAllowed(t *testing.T) {
	db, mock := redismock.NewClientMock()
	l := NewRedisLimiter(db, 5, time.Minute)

	mock.ExpectIncr("ratelimit:10.0.0.1").SetVal(5)

	allowed, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_RedisDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	l := NewRedisLimiter(db, 5, time.Minute)

	mock.ExpectIncr("ratelimit:10.0.0.1").SetErr(assert.AnError)

	_, err := l.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err)
}
