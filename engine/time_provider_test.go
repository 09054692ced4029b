package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if t2.Sub(t1) < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", t2.Sub(t1))
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time %v, got %v", startTime, now)
	}

	newTime := startTime.Add(24 * time.Hour)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(90 * time.Minute)
	if now, want := mock.Now(), newTime.Add(90*time.Minute); !now.Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, now)
	}
}

// The sequencer samples the clock from one goroutine but tests may drive
// it from helpers; the mock stays race-free either way
func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
			done <- true
		}()
	}
	for i := 0; i < 15; i++ {
		<-done
	}

	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(250 * time.Millisecond)
	if now := mock.Now(); !now.Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, now)
	}
}
