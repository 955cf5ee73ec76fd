package repository

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestUserSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
	if errors.Is(ErrUserNotFound, ErrDuplicateEmail) {
		t.Fatal("sentinels should be distinct")
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"unrelated sentinel", ErrUserNotFound, false},
		{
			"mysql duplicate key",
			errors.New("Error 1062 (23000): Duplicate entry 'a@b.com' for key 'users.email'"),
			true,
		},
		{
			"wrapped duplicate key",
			fmt.Errorf("creating user: %w", errors.New("Duplicate entry 'a@b.com' for key 'users.email'")),
			true,
		},
		{"connection refused", errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
