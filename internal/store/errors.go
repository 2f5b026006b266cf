package store

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrOpen is returned when the database cannot be opened or initialized.
	ErrOpen = errors.New("store open error")
	// ErrInvalidArgument is returned for blank required input or an invalid answer value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrForeignKey is returned when a write references a missing image or question.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrWrite is returned when a write transaction fails.
	ErrWrite = errors.New("store write error")
	// ErrRead is returned when a query fails.
	ErrRead = errors.New("store read error")
	// ErrClosed is returned by every data operation after Close.
	ErrClosed = errors.New("store is closed")
)

// isForeignKeyError reports whether err came from a failed FOREIGN KEY constraint.
func isForeignKeyError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
}

// writeError maps a failed write to ErrForeignKey or ErrWrite, keeping the cause.
func writeError(op string, err error) error {
	if isForeignKeyError(err) {
		return fmt.Errorf("while %s: %w: %w", op, ErrForeignKey, err)
	}
	return fmt.Errorf("while %s: %w: %w", op, ErrWrite, err)
}

func readError(op string, err error) error {
	return fmt.Errorf("while %s: %w: %w", op, ErrRead, err)
}
