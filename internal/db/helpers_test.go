package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.tables").WithArgs("payment").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("payment"))
	if !HasTable(db, "payment") {
		t.Fatalf("expected table to be reported present")
	}

	mock.ExpectQuery("FROM information_schema.tables").WithArgs("payment").
		WillReturnError(errors.New("driver: bad connection"))
	if HasTable(db, "payment") {
		t.Fatalf("query error must count as absent")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasColumnAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.columns").WithArgs("payment", "payment_method").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	if HasColumn(db, "payment", "payment_method") {
		t.Fatalf("no rows must count as absent")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
