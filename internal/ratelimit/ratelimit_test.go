package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name            string
		filesPerSecond  float64
		expectUnlimited bool
	}{
		{
			name:            "unlimited_zero",
			filesPerSecond:  0,
			expectUnlimited: true,
		},
		{
			name:            "unlimited_negative",
			filesPerSecond:  -1,
			expectUnlimited: true,
		},
		{
			name:            "limited_one_per_second",
			filesPerSecond:  1,
			expectUnlimited: false,
		},
		{
			name:            "limited_fractional",
			filesPerSecond:  0.5,
			expectUnlimited: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := New(tt.filesPerSecond)
			if limiter == nil {
				t.Fatal("New() returned nil")
			}

			limit := limiter.Limit()
			if tt.expectUnlimited {
				if limit != 0 {
					t.Errorf("Expected unlimited (0), got %f", limit)
				}
			} else {
				if limit != tt.filesPerSecond {
					t.Errorf("Expected limit %f, got %f", tt.filesPerSecond, limit)
				}
			}
		})
	}
}

func TestLimiter_Wait(t *testing.T) {
	t.Run("unlimited_no_wait", func(t *testing.T) {
		limiter := New(0)
		ctx := context.Background()

		start := time.Now()
		if err := limiter.Wait(ctx); err != nil {
			t.Errorf("Wait() failed: %v", err)
		}
		duration := time.Since(start)

		// Should complete almost immediately
		if duration > 10*time.Millisecond {
			t.Errorf("Unlimited limiter took too long: %v", duration)
		}
	})

	t.Run("limited_waits_appropriately", func(t *testing.T) {
		limiter := New(10) // 10 files per second = 100ms between files
		ctx := context.Background()

		start := time.Now()
		if err := limiter.Wait(ctx); err != nil {
			t.Errorf("First Wait() failed: %v", err)
		}
		firstDuration := time.Since(start)

		if firstDuration > 10*time.Millisecond {
			t.Errorf("First wait took too long: %v", firstDuration)
		}

		// Second call should wait roughly 100ms
		start = time.Now()
		if err := limiter.Wait(ctx); err != nil {
			t.Errorf("Second Wait() failed: %v", err)
		}
		secondDuration := time.Since(start)

		if secondDuration < 80*time.Millisecond || secondDuration > 120*time.Millisecond {
			t.Errorf("Second wait time unexpected: %v (expected ~100ms)", secondDuration)
		}
	})

	t.Run("context_cancellation", func(t *testing.T) {
		limiter := New(1)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		// Use up the first allowed slot
		if err := limiter.Wait(context.Background()); err != nil {
			t.Errorf("First Wait() failed: %v", err)
		}

		if err := limiter.Wait(ctx); err == nil {
			t.Error("Expected context cancellation error")
		}
	})
}
