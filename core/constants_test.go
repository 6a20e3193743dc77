package core

import (
	"testing"
	"time"
)

func TestRequiredKernels_CopyIsolated(t *testing.T) {
	kernels := RequiredKernels()
	if len(kernels) != 8 {
		t.Fatalf("expected 8 kernels, got %d: %v", len(kernels), kernels)
	}
	if kernels[0] != "naif0013.tls" || kernels[1] != "de440.bsp" {
		t.Fatalf("unexpected manifest head: %v", kernels[:2])
	}

	kernels[0] = "mutated"
	if again := RequiredKernels(); again[0] != "naif0013.tls" {
		t.Fatal("manifest mutated through the returned slice")
	}
}

func TestReferenceEpoch(t *testing.T) {
	parsed, err := time.Parse("2006-01-02T15:04:05", ReferenceEpoch)
	if err != nil {
		t.Fatalf("ReferenceEpoch is not ISO-8601: %v", err)
	}
	if !parsed.Equal(ReferenceEpochTime()) {
		t.Fatalf("ReferenceEpochTime %v does not match the string %q", ReferenceEpochTime(), ReferenceEpoch)
	}

	if off := EpochOffset(ReferenceEpochTime()); off != 0 {
		t.Fatalf("offset at the epoch must be 0, got %g", off)
	}
	if off := EpochOffset(ReferenceEpochTime().Add(24 * time.Hour)); off != SecondsPerDay {
		t.Fatalf("offset one day later must be %g, got %g", SecondsPerDay, off)
	}
	if off := EpochOffset(ReferenceEpochTime().Add(-time.Hour)); off != -3600 {
		t.Fatalf("offsets before the epoch must be negative, got %g", off)
	}
}

func TestPassThroughConstants(t *testing.T) {
	if DefaultFrame != "ECLIPJ2000" {
		t.Errorf("DefaultFrame = %q", DefaultFrame)
	}
	if DefaultDragCutoffMeters != 500e3 {
		t.Errorf("DefaultDragCutoffMeters = %g", DefaultDragCutoffMeters)
	}
	if SecondsPerDay != 86400 {
		t.Errorf("SecondsPerDay = %g", SecondsPerDay)
	}
}
