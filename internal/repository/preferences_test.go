package repository

import (
	"errors"
	"testing"
)

func TestNewPreferencesRepository(t *testing.T) {
	repo := NewPreferencesRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil PreferencesRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestPreferencesSentinelError(t *testing.T) {
	if ErrPreferencesNotFound.Error() != "preferences not found" {
		t.Fatalf("unexpected error message: %s", ErrPreferencesNotFound.Error())
	}
	if errors.Is(ErrPreferencesNotFound, ErrUserNotFound) {
		t.Fatal("sentinels should be distinct")
	}
}
