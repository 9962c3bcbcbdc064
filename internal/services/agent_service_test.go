package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"travel-backend/internal/domain"
)

func TestCreateAgentDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM agent").WithArgs("agen@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AgentService{DB: db}
	_, err = svc.CreateAgent(1, AgentInput{
		Name:     "Agen Satu",
		Email:    "agen@example.com",
		Password: "rahasia",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateAgentValidatesCommissionRange(t *testing.T) {
	svc := AgentService{}
	for _, rate := range []float64{-1, 101} {
		_, err := svc.CreateAgent(1, AgentInput{
			Name:           "Agen Satu",
			Email:          "agen@example.com",
			Password:       "rahasia",
			CommissionRate: rate,
		})
		if !domain.IsValidation(err) {
			t.Fatalf("rate %v: expected validation error, got %v", rate, err)
		}
	}
}

func TestUpdateAgentOutsideAdminScope(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT agent_id FROM agent").WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"agent_id"}))

	svc := AgentService{DB: db}
	_, err = svc.UpdateAgent(1, 5, AgentInput{Name: "Agen", Email: "agen@example.com"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAgentOutsideAdminScope(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT agent_id FROM agent").WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"agent_id"}))

	svc := AgentService{DB: db}
	if err := svc.DeleteAgent(1, 5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
