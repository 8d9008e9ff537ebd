package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUIDv7(t *testing.T) {
	id := GenerateUUIDv7()
	if id == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if id.Version() != 7 {
		t.Fatalf("expected version 7, got %d", id.Version())
	}
}

func TestGenerateUUIDv7_FallbackBranch(t *testing.T) {
	orig := newUUIDv7
	t.Cleanup(func() { newUUIDv7 = orig })

	newUUIDv7 = func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("v7 failed")
	}
	id := GenerateUUIDv7()
	if id == uuid.Nil {
		t.Fatal("expected v4 fallback id when v7 fails")
	}
}

func TestParseUUID(t *testing.T) {
	want := uuid.New()
	got, ok := ParseUUID(want.String())
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (ok=%v)", want, got, ok)
	}
	if _, ok := ParseUUID(""); ok {
		t.Fatal("expected empty string rejected")
	}
	if _, ok := ParseUUID("not-a-uuid"); ok {
		t.Fatal("expected malformed uuid rejected")
	}
}
