package repositories

import (
	"database/sql"
	"errors"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type AgentRepo struct {
	DB *sql.DB
}

func (r AgentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetActiveByEmail is the login lookup: inactive agents cannot authenticate.
func (r AgentRepo) GetActiveByEmail(email string) (models.Agent, string, error) {
	var a models.Agent
	var hash string
	err := r.db().QueryRow(`
		SELECT agent_id, admin_id, name, email, password, COALESCE(phone,''), commission_rate, status
		FROM agent
		WHERE email = ? AND status = 'active'
	`, email).Scan(&a.AgentID, &a.AdminID, &a.Name, &a.Email, &hash, &a.Phone, &a.CommissionRate, &a.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agent{}, "", domain.NotFoundError{Resource: "agent"}
		}
		return models.Agent{}, "", domain.InternalError{Err: err}
	}
	return a, hash, nil
}

// GetActiveByID backs per-request principal checks; stale or deactivated
// agents fail here even with a structurally valid token.
func (r AgentRepo) GetActiveByID(id int64) (models.Agent, error) {
	var a models.Agent
	err := r.db().QueryRow(`
		SELECT agent_id, admin_id, name, email, COALESCE(phone,''), commission_rate, status
		FROM agent
		WHERE agent_id = ? AND status = 'active'
	`, id).Scan(&a.AgentID, &a.AdminID, &a.Name, &a.Email, &a.Phone, &a.CommissionRate, &a.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agent{}, domain.NotFoundError{Resource: "agent"}
		}
		return models.Agent{}, domain.InternalError{Err: err}
	}
	return a, nil
}

func (r AgentRepo) GetByID(id int64) (models.Agent, error) {
	var a models.Agent
	err := r.db().QueryRow(`
		SELECT agent_id, admin_id, name, email, COALESCE(phone,''), commission_rate, status,
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM agent
		WHERE agent_id = ?
	`, id).Scan(&a.AgentID, &a.AdminID, &a.Name, &a.Email, &a.Phone, &a.CommissionRate, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agent{}, domain.NotFoundError{Resource: "agent"}
		}
		return models.Agent{}, domain.InternalError{Err: err}
	}
	return a, nil
}

func (r AgentRepo) ExistsEmail(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM agent WHERE email = ?`, email).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

func (r AgentRepo) Create(a models.Agent, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO agent (admin_id, name, email, phone, commission_rate, password)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.AdminID, a.Name, a.Email, a.Phone, a.CommissionRate, passwordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "email agen", Err: err}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// OwnedByAdmin reports whether the agent row belongs to the admin.
func (r AgentRepo) OwnedByAdmin(agentID, adminID int64) (bool, error) {
	var id int64
	err := r.db().QueryRow(`SELECT agent_id FROM agent WHERE agent_id = ? AND admin_id = ?`, agentID, adminID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

func (r AgentRepo) ListByAdmin(adminID int64) ([]models.Agent, error) {
	rows, err := r.db().Query(`
		SELECT agent_id, admin_id, name, email, COALESCE(phone,''), commission_rate, status,
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM agent
		WHERE admin_id = ?
		ORDER BY created_at DESC
	`, adminID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Agent{}
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.AgentID, &a.AdminID, &a.Name, &a.Email, &a.Phone, &a.CommissionRate, &a.Status, &a.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r AgentRepo) Update(agentID, adminID int64, a models.Agent) error {
	_, err := r.db().Exec(`
		UPDATE agent
		SET name = ?, email = ?, phone = ?, commission_rate = ?, status = ?
		WHERE agent_id = ? AND admin_id = ?
	`, a.Name, a.Email, a.Phone, a.CommissionRate, a.Status, agentID, adminID)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return domain.ConflictError{Resource: "email agen", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

// Delete removes the agent; related packages and vehicles cascade in the schema.
func (r AgentRepo) Delete(agentID, adminID int64) error {
	if _, err := r.db().Exec(`DELETE FROM agent WHERE agent_id = ? AND admin_id = ?`, agentID, adminID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r AgentRepo) UpdateProfile(agentID int64, name, phone string) error {
	if _, err := r.db().Exec(`UPDATE agent SET name = ?, phone = ? WHERE agent_id = ?`, name, phone, agentID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r AgentRepo) GetPasswordHash(id int64) (string, error) {
	var hash string
	err := r.db().QueryRow(`SELECT password FROM agent WHERE agent_id = ?`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFoundError{Resource: "agent"}
		}
		return "", domain.InternalError{Err: err}
	}
	return hash, nil
}

func (r AgentRepo) UpdatePassword(id int64, passwordHash string) error {
	if _, err := r.db().Exec(`UPDATE agent SET password = ? WHERE agent_id = ?`, passwordHash, id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
