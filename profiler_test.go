package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestProfiler(t *testing.T) *Profiler {
	t.Helper()
	p, err := NewProfiler(filepath.Join(t.TempDir(), "profiles"))
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}
	p.captureDuration = 20 * time.Millisecond
	return p
}

func waitIdle(t *testing.T, p *Profiler) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() {
		if time.Now().After(deadline) {
			t.Fatal("Expected capture to finish")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCaptureProfileWritesFiles(t *testing.T) {
	p := newTestProfiler(t)

	if err := p.CaptureProfile("test"); err != nil {
		t.Fatalf("Expected capture to start, got %v", err)
	}
	waitIdle(t, p)

	entries, err := os.ReadDir(p.profilesDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected profile and trace files, got %d entries", len(entries))
	}
}

func TestCaptureProfileCooldown(t *testing.T) {
	p := newTestProfiler(t)

	if err := p.CaptureProfile("first"); err != nil {
		t.Fatalf("Expected first capture to start, got %v", err)
	}
	if err := p.CaptureProfile("second"); err == nil {
		t.Error("Expected second capture to be refused")
	}
	waitIdle(t, p)
}

func TestCheckIgnoresWarmupAndHealthyRate(t *testing.T) {
	p := newTestProfiler(t)

	p.Check(10, 0, 0)
	if p.IsProfiling() {
		t.Error("Expected no capture during warmup")
	}

	p.startTime = time.Now().Add(-time.Minute)
	p.Check(60, 0, 0)
	if p.IsProfiling() {
		t.Error("Expected no capture at a healthy rate")
	}
}
