package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gameshelf/internal/config"
	"gameshelf/internal/sessions"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConnectWithRetrySuccess(t *testing.T) {
	origOpen := gormOpen
	defer func() { gormOpen = origOpen }()

	var calls int32
	gormOpen = func(*config.Config) (*gorm.DB, error) {
		atomic.AddInt32(&calls, 1)
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	db, err := connectWithRetry(&config.Config{}, time.Millisecond, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected single connection attempt, got %d", calls)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql DB: %v", err)
	}
	sqlDB.Close()
}

func TestConnectWithRetryRecoversAfterFailures(t *testing.T) {
	origOpen := gormOpen
	defer func() { gormOpen = origOpen }()

	var calls int32
	gormOpen = func(*config.Config) (*gorm.DB, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return nil, errors.New("connect failed")
		}
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	db, err := connectWithRetry(&config.Config{}, time.Millisecond, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	sqlDB, _ := db.DB()
	sqlDB.Close()
}

func TestConnectWithRetryGivesUp(t *testing.T) {
	origOpen := gormOpen
	defer func() { gormOpen = origOpen }()

	gormOpen = func(*config.Config) (*gorm.DB, error) {
		return nil, errors.New("connect failed")
	}

	if _, err := connectWithRetry(&config.Config{}, time.Millisecond, zap.NewNop()); err == nil {
		t.Fatalf("expected error after exhausting attempts")
	}
}

func TestNewSessionStoreDefaultsToMemory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newSessionStore(ctx, &config.Config{}, zap.NewNop())
	if _, ok := store.(*sessions.MemoryStore); !ok {
		t.Fatalf("expected MemoryStore, got %T", store)
	}
}

func TestNewSessionStoreUsesRedisWhenConfigured(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newSessionStore(ctx, &config.Config{RedisAddr: "localhost:6379"}, zap.NewNop())
	if _, ok := store.(*sessions.RedisStore); !ok {
		t.Fatalf("expected RedisStore, got %T", store)
	}
}
