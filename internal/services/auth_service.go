package services

import (
	"database/sql"
	"strings"
	"time"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues bearer tokens and resolves them back to principals.
// One service covers all three roles so the credential rules stay in one
// place instead of three near-copies.
type AuthService struct {
	DB        *sql.DB
	Secret    []byte
	TTL       time.Duration
	RequestID string
}

func (s AuthService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AuthService) admins() repositories.AdminRepo       { return repositories.AdminRepo{DB: s.db()} }
func (s AuthService) agents() repositories.AgentRepo       { return repositories.AgentRepo{DB: s.db()} }
func (s AuthService) customers() repositories.CustomerRepo { return repositories.CustomerRepo{DB: s.db()} }

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 168 * time.Hour
}

// IssueToken signs an HS256 token carrying the role and principal id.
func (s AuthService) IssueToken(role domain.Role, id int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": string(role),
		"uid":  id,
		"exp":  time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns role + id.
// Failures here mean the credential itself is bad (403 at the boundary),
// as opposed to a missing or stale principal (401).
func (s AuthService) ParseToken(tokenString string) (domain.Role, int64, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", 0, domain.ForbiddenError{Msg: "token tidak valid atau kedaluwarsa"}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, domain.ForbiddenError{Msg: "token tidak valid atau kedaluwarsa"}
	}
	role := domain.Role(strings.TrimSpace(getStringClaim(claims, "role")))
	uid := getInt64Claim(claims, "uid")
	if uid <= 0 {
		return "", 0, domain.ForbiddenError{Msg: "format token tidak dikenal"}
	}
	switch role {
	case domain.RoleAdmin, domain.RoleAgent, domain.RoleCustomer:
	default:
		return "", 0, domain.ForbiddenError{Msg: "format token tidak dikenal"}
	}
	return role, uid, nil
}

// ResolvePrincipal re-checks the principal against the store on every
// request. A deleted customer or a deactivated agent is rejected even
// though the token still verifies.
func (s AuthService) ResolvePrincipal(tokenString string) (domain.Principal, error) {
	role, uid, err := s.ParseToken(tokenString)
	if err != nil {
		return domain.Principal{}, err
	}

	switch role {
	case domain.RoleAdmin:
		a, err := s.admins().GetByID(uid)
		if err != nil {
			if domain.IsNotFound(err) {
				return domain.Principal{}, domain.UnauthorizedError{Msg: "token tidak valid - admin tidak ditemukan"}
			}
			return domain.Principal{}, err
		}
		return domain.Principal{Role: domain.RoleAdmin, ID: a.AdminID, Name: a.Name, Email: a.Email}, nil

	case domain.RoleAgent:
		a, err := s.agents().GetActiveByID(uid)
		if err != nil {
			if domain.IsNotFound(err) {
				return domain.Principal{}, domain.UnauthorizedError{Msg: "token tidak valid - agen tidak ditemukan atau nonaktif"}
			}
			return domain.Principal{}, err
		}
		return domain.Principal{
			Role: domain.RoleAgent, ID: a.AgentID, Name: a.Name, Email: a.Email,
			AdminID: a.AdminID, CommissionRate: a.CommissionRate,
		}, nil

	default:
		c, err := s.customers().GetByID(uid)
		if err != nil {
			if domain.IsNotFound(err) {
				return domain.Principal{}, domain.UnauthorizedError{Msg: "token tidak valid - customer tidak ditemukan"}
			}
			return domain.Principal{}, err
		}
		return domain.Principal{Role: domain.RoleCustomer, ID: c.CustomerID, Name: c.FullName, Email: c.Email}, nil
	}
}

type LoginResult struct {
	Token string
	Admin *models.Admin
	Agent *models.Agent
	Cust  *models.Customer
}

func (s AuthService) AdminLogin(email, password string) (LoginResult, error) {
	a, hash, err := s.admins().GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.UnauthorizedError{Msg: "email atau password salah"}
		}
		return LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return LoginResult{}, domain.UnauthorizedError{Msg: "email atau password salah"}
	}
	token, err := s.IssueToken(domain.RoleAdmin, a.AdminID)
	if err != nil {
		return LoginResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "admin_login", "admin_id="+itoa(a.AdminID))
	return LoginResult{Token: token, Admin: &a}, nil
}

// AgentLogin only matches active agents; an inactive agent looks the
// same as a wrong password to the caller.
func (s AuthService) AgentLogin(email, password string) (LoginResult, error) {
	a, hash, err := s.agents().GetActiveByEmail(strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.UnauthorizedError{Msg: "email atau password salah"}
		}
		return LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return LoginResult{}, domain.UnauthorizedError{Msg: "email atau password salah"}
	}
	token, err := s.IssueToken(domain.RoleAgent, a.AgentID)
	if err != nil {
		return LoginResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "agent_login", "agent_id="+itoa(a.AgentID))
	return LoginResult{Token: token, Agent: &a}, nil
}

func (s AuthService) CustomerLogin(email, password string) (LoginResult, error) {
	c, hash, err := s.customers().GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.UnauthorizedError{Msg: "email atau password salah"}
		}
		return LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return LoginResult{}, domain.UnauthorizedError{Msg: "email atau password salah"}
	}
	token, err := s.IssueToken(domain.RoleCustomer, c.CustomerID)
	if err != nil {
		return LoginResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "customer_login", "customer_id="+itoa(c.CustomerID))
	return LoginResult{Token: token, Cust: &c}, nil
}

// CustomerRegister creates the account and logs the customer in.
func (s AuthService) CustomerRegister(c models.Customer, password string) (LoginResult, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	if c.FullName == "" || c.Email == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "nama lengkap, email, dan password wajib diisi"}
	}

	exists, err := s.customers().ExistsEmail(c.Email)
	if err != nil {
		return LoginResult{}, err
	}
	if exists {
		return LoginResult{}, domain.ConflictError{Msg: "email sudah terdaftar"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}

	id, err := s.customers().Create(c, string(hash))
	if err != nil {
		return LoginResult{}, err
	}
	c.CustomerID = id

	token, err := s.IssueToken(domain.RoleCustomer, id)
	if err != nil {
		return LoginResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "customer_register", "customer_id="+itoa(id))
	return LoginResult{Token: token, Cust: &c}, nil
}

// ChangePassword verifies the current password before writing the new hash.
// Works for agents and customers; admins have no change-password route.
func (s AuthService) ChangePassword(role domain.Role, id int64, current, next string) error {
	if strings.TrimSpace(next) == "" {
		return domain.ValidationError{Field: "newPassword", Msg: "wajib diisi"}
	}

	var (
		hash string
		err  error
	)
	switch role {
	case domain.RoleAgent:
		hash, err = s.agents().GetPasswordHash(id)
	case domain.RoleCustomer:
		hash, err = s.customers().GetPasswordHash(id)
	default:
		return domain.ForbiddenError{Msg: "role tidak didukung"}
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)) != nil {
		return domain.ValidationError{Field: "currentPassword", Msg: "password saat ini salah"}
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}

	switch role {
	case domain.RoleAgent:
		return s.agents().UpdatePassword(id, string(newHash))
	default:
		return s.customers().UpdatePassword(id, string(newHash))
	}
}

func getStringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func getInt64Claim(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
