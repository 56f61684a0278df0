package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestConnectWithRetry_ExhaustsBudget(t *testing.T) {
	attempts := 0
	_, err := connectWithRetry(func() (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	}, 5, time.Millisecond)

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d", attempts)
	}
}

func TestConnectWithRetry_SucceedsOnThirdAttempt(t *testing.T) {
	attempts := 0
	want := &gorm.DB{}
	start := time.Now()
	delay := 20 * time.Millisecond

	db, err := connectWithRetry(func() (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return want, nil
	}, 5, delay)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != want {
		t.Fatal("returned db is not the opened one")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	// Two failed attempts cost one fixed delay each.
	if elapsed := time.Since(start); elapsed < 2*delay {
		t.Fatalf("expected at least %v of delay, got %v", 2*delay, elapsed)
	}
}

// An attempt is connect plus schema ensure: when the dial succeeds but the
// migrate step fails, the attempt still counts against the budget and the
// next one waits the fixed delay, exactly like a refused connection.
func TestConnectWithRetry_SchemaEnsureFailureConsumesAttempts(t *testing.T) {
	attempts := 0
	want := &gorm.DB{}

	db, err := connectWithRetry(func() (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			// Dial is fine, DDL is not.
			return nil, errors.New("failed to migrate schema: permission denied for schema public")
		}
		return want, nil
	}, 5, time.Millisecond)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != want {
		t.Fatal("returned db is not the migrated one")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestConnectWithRetry_SchemaEnsureNeverSucceeds(t *testing.T) {
	attempts := 0
	_, err := connectWithRetry(func() (*gorm.DB, error) {
		attempts++
		return nil, errors.New("failed to migrate schema: permission denied for schema public")
	}, 5, time.Millisecond)

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d", attempts)
	}
	if !strings.Contains(err.Error(), "after 5 attempts") {
		t.Fatalf("error should report the spent budget: %v", err)
	}
}

func TestConnectWithRetry_FirstAttemptSucceedsWithoutDelay(t *testing.T) {
	start := time.Now()
	_, err := connectWithRetry(func() (*gorm.DB, error) {
		return &gorm.DB{}, nil
	}, 5, time.Second)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("successful first attempt should not wait, took %v", elapsed)
	}
}
