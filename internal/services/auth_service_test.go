package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

func TestCustomerRegisterDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customer").WithArgs("tini@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AuthService{DB: db, Secret: []byte("test-secret")}
	_, err = svc.CustomerRegister(models.Customer{FullName: "Tini", Email: "tini@example.com"}, "rahasia")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerRegisterMissingFields(t *testing.T) {
	svc := AuthService{Secret: []byte("test-secret")}
	_, err := svc.CustomerRegister(models.Customer{FullName: "Tini"}, "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAgentLoginInactiveLooksLikeBadCredentials(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// status = 'active' is part of the lookup, so an inactive agent
	// simply produces no row
	mock.ExpectQuery("FROM agent").WithArgs("nonaktif@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"agent_id", "admin_id", "name", "email", "password", "phone", "commission_rate", "status",
		}))

	svc := AuthService{DB: db, Secret: []byte("test-secret")}
	_, err = svc.AgentLogin("nonaktif@example.com", "apapun")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCustomerLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("benar"), bcrypt.MinCost)
	mock.ExpectQuery("FROM customer").WithArgs("tini@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"customer_id", "full_name", "address", "email", "phone", "password",
		}).AddRow(9, "Tini", "", "tini@example.com", "", string(hash)))

	svc := AuthService{DB: db, Secret: []byte("test-secret")}
	_, err = svc.CustomerLogin("tini@example.com", "salah")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestParseTokenGarbageAndExpired(t *testing.T) {
	svc := AuthService{Secret: []byte("test-secret")}

	if _, _, err := svc.ParseToken("bukan-token"); !domain.IsForbidden(err) {
		t.Fatalf("garbage token: expected forbidden, got %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": string(domain.RoleCustomer),
		"uid":  int64(9),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	if _, _, err := svc.ParseToken(signed); !domain.IsForbidden(err) {
		t.Fatalf("expired token: expected forbidden, got %v", err)
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	svc := AuthService{Secret: []byte("test-secret"), TTL: time.Hour}
	token, err := svc.IssueToken(domain.RoleAgent, 5)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	role, uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if role != domain.RoleAgent || uid != 5 {
		t.Fatalf("claims = (%s, %d), want (agent, 5)", role, uid)
	}
}

func TestResolvePrincipalRejectsDeactivatedAgent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM agent").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"agent_id", "admin_id", "name", "email", "phone", "commission_rate", "status",
		}))

	svc := AuthService{DB: db, Secret: []byte("test-secret"), TTL: time.Hour}
	token, err := svc.IssueToken(domain.RoleAgent, 5)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	if _, err := svc.ResolvePrincipal(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for missing principal, got %v", err)
	}
}
