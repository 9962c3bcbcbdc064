package models

// Admin is the top-level principal; owns zero or more agents.
type Admin struct {
	AdminID int64  `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Agent belongs to exactly one admin. Only active agents can log in
// or have their inventory listed publicly.
type Agent struct {
	AgentID        int64   `json:"agent_id"`
	AdminID        int64   `json:"admin_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CommissionRate float64 `json:"commission_rate"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

type Customer struct {
	CustomerID int64  `json:"customer_id"`
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IDType     string `json:"id_type,omitempty"`
	IDNumber   string `json:"id_number,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Country    string `json:"country,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

const (
	AgentStatusActive   = "active"
	AgentStatusInactive = "inactive"
)
