package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterAndList(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:        "demo",
		Description: "demo job",
		Interval:    time.Hour,
		Fn:          func(ctx context.Context) error { return nil },
	})

	items := s.List()
	if len(items) != 1 {
		t.Fatalf("got %d jobs, want 1", len(items))
	}
	if items[0].Name != "demo" || items[0].Status != StatusIdle {
		t.Errorf("item = %+v", items[0])
	}
	if items[0].NextDate == nil || items[0].NextDate.Before(time.Now()) {
		t.Errorf("NextDate should be in the future, got %v", items[0].NextDate)
	}
}

func TestRunUnknownJob(t *testing.T) {
	s := New()
	if err := s.Run(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown job name")
	}
}

func TestRunExecutesJob(t *testing.T) {
	s := New()
	done := make(chan struct{})
	s.Register(Job{
		Name:     "once",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})

	if err := s.Run(context.Background(), "once"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not execute")
	}

	// Status settles asynchronously after Fn returns.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if items := s.List(); items[0].Status == StatusFulfill {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job status never became fulfill")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestFailedJobStatus(t *testing.T) {
	s := New()
	done := make(chan struct{})
	s.Register(Job{
		Name:     "boom",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			defer close(done)
			return errors.New("boom")
		},
	})

	if err := s.Run(context.Background(), "boom"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	<-done

	deadline := time.Now().Add(2 * time.Second)
	for {
		if items := s.List(); items[0].Status == StatusReject {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job status never became reject")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
