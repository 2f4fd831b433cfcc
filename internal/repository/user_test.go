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
}

func TestUserSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	// Shape of the error MySQL raises when the unique email index rejects
	// an insert; this is what Create maps to ErrDuplicateEmail.
	mysqlDup := errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'users.uniq_users_email'")
	if !isDuplicateEntryError(mysqlDup) {
		t.Error("expected MySQL 1062 error to be detected as duplicate entry")
	}

	wrapped := fmt.Errorf("inserting user: %w", mysqlDup)
	if !isDuplicateEntryError(wrapped) {
		t.Error("expected wrapped MySQL 1062 error to be detected as duplicate entry")
	}

	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	if isDuplicateEntryError(errors.New("Error 1146 (42S02): Table 'tracker.users' doesn't exist")) {
		t.Error("unrelated MySQL error should not be a duplicate entry error")
	}
}
