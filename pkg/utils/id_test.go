package utils

import (
	"strings"
	"testing"
)

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()
	if !strings.HasPrefix(id, "run-") {
		t.Errorf("Expected run ID to start with run-, got %s", id)
	}

	parts := strings.Split(id, "-")
	if len(parts) != 4 {
		t.Fatalf("Expected 4 dash-separated parts, got %d in %s", len(parts), id)
	}
	if len(parts[3]) != 8 {
		t.Errorf("Expected 8-character suffix, got %s", parts[3])
	}
}

func TestGenerateRunIDUnique(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()
	if a == b {
		t.Errorf("Expected distinct run IDs, got %s twice", a)
	}
}
