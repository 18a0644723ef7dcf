package health

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatusMemoryStore(t *testing.T) {
	payload, ok := NewService(nil).Status(context.Background())
	if !ok || payload["store"] != "memory" {
		t.Fatalf("unexpected status: %v %v", payload, ok)
	}
}

func TestStatusPingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()
	payload, ok := NewService(db).Status(context.Background())
	if !ok || payload["store"] != "postgres" {
		t.Fatalf("unexpected status: %v %v", payload, ok)
	}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	payload, ok = NewService(db).Status(context.Background())
	if ok || payload["ok"] != false {
		t.Fatalf("expected unhealthy status, got %v", payload)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
