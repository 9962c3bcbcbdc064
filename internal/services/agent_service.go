package services

import (
	"database/sql"
	"strings"

	"golang.org/x/crypto/bcrypt"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"
)

// AgentService covers the admin side of agent management plus the agent's
// own profile. Every mutation is scoped to the owning admin.
type AgentService struct {
	DB        *sql.DB
	RequestID string
}

func (s AgentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AgentService) agents() repositories.AgentRepo {
	return repositories.AgentRepo{DB: s.db()}
}

type AgentInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Password       string  `json:"password"`
	CommissionRate float64 `json:"commission_rate"`
	Status         string  `json:"status"`
}

func (s AgentService) CreateAgent(adminID int64, in AgentInput) (models.Agent, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.Agent{}, domain.ValidationError{Msg: "name, email, dan password wajib diisi"}
	}
	if in.CommissionRate < 0 || in.CommissionRate > 100 {
		return models.Agent{}, domain.ValidationError{Field: "commission_rate", Msg: "harus antara 0 dan 100"}
	}

	exists, err := s.agents().ExistsEmail(in.Email)
	if err != nil {
		return models.Agent{}, err
	}
	if exists {
		return models.Agent{}, domain.ConflictError{Resource: "email agen", Msg: "email agen sudah terdaftar"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Agent{}, domain.InternalError{Err: err}
	}

	a := models.Agent{
		AdminID:        adminID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		CommissionRate: in.CommissionRate,
		Status:         models.AgentStatusActive,
	}
	id, err := s.agents().Create(a, string(hash))
	if err != nil {
		return models.Agent{}, err
	}
	a.AgentID = id

	utils.LogEvent(s.RequestID, "agent", "create", "agent_id="+itoa(id)+" admin_id="+itoa(adminID))
	return a, nil
}

func (s AgentService) ListAgents(adminID int64) ([]models.Agent, error) {
	return s.agents().ListByAdmin(adminID)
}

func (s AgentService) UpdateAgent(adminID, agentID int64, in AgentInput) (models.Agent, error) {
	owned, err := s.agents().OwnedByAdmin(agentID, adminID)
	if err != nil {
		return models.Agent{}, err
	}
	if !owned {
		return models.Agent{}, domain.NotFoundError{Resource: "agen"}
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" {
		return models.Agent{}, domain.ValidationError{Msg: "name dan email wajib diisi"}
	}
	if in.CommissionRate < 0 || in.CommissionRate > 100 {
		return models.Agent{}, domain.ValidationError{Field: "commission_rate", Msg: "harus antara 0 dan 100"}
	}
	status := in.Status
	if status == "" {
		status = models.AgentStatusActive
	}
	if status != models.AgentStatusActive && status != models.AgentStatusInactive {
		return models.Agent{}, domain.ValidationError{Field: "status", Msg: "harus active atau inactive"}
	}

	a := models.Agent{
		AgentID:        agentID,
		AdminID:        adminID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		CommissionRate: in.CommissionRate,
		Status:         status,
	}
	if err := s.agents().Update(agentID, adminID, a); err != nil {
		return models.Agent{}, err
	}

	utils.LogEvent(s.RequestID, "agent", "update", "agent_id="+itoa(agentID))
	return a, nil
}

func (s AgentService) DeleteAgent(adminID, agentID int64) error {
	owned, err := s.agents().OwnedByAdmin(agentID, adminID)
	if err != nil {
		return err
	}
	if !owned {
		return domain.NotFoundError{Resource: "agen"}
	}
	if err := s.agents().Delete(agentID, adminID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "agent", "delete", "agent_id="+itoa(agentID))
	return nil
}

type AgentProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (s AgentService) UpdateProfile(agentID int64, in AgentProfileInput) (models.Agent, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return models.Agent{}, domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if err := s.agents().UpdateProfile(agentID, in.Name, in.Phone); err != nil {
		return models.Agent{}, err
	}
	utils.LogEvent(s.RequestID, "agent", "update_profile", "agent_id="+itoa(agentID))
	return s.agents().GetByID(agentID)
}
