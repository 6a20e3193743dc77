package main

import (
	"testing"
)

func TestParseEpochArg(t *testing.T) {
	if dt, err := parseEpochArg(""); err != nil || dt != 0 {
		t.Fatalf("empty epoch = %v, %v", dt, err)
	}
	if dt, err := parseEpochArg("86400"); err != nil || dt != 86400 {
		t.Fatalf("numeric epoch = %v, %v", dt, err)
	}
	if dt, err := parseEpochArg("-3600.5"); err != nil || dt != -3600.5 {
		t.Fatalf("negative epoch = %v, %v", dt, err)
	}
	if dt, err := parseEpochArg("2025-05-12T00:00:00Z"); err != nil || dt != 86400 {
		t.Fatalf("RFC 3339 epoch = %v, %v", dt, err)
	}
	if _, err := parseEpochArg("yesterday"); err == nil {
		t.Fatal("expected error for malformed epoch")
	}
}
