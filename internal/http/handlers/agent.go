package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/domain"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"
)

func AgentLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := authService(c).AgentLogin(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "login berhasil", gin.H{"token": res.Token, "agent": res.Agent})
}

func AgentProfile(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	agent, err := repositories.AgentRepo{}.GetByID(agentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", agent)
}

func UpdateAgentProfile(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req services.AgentProfileInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.AgentService{RequestID: middleware.GetRequestID(c)}
	agent, err := svc.UpdateProfile(agentID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "profil berhasil diperbarui", agent)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func AgentChangePassword(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := authService(c).ChangePassword(domain.RoleAgent, agentID, req.CurrentPassword, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "password berhasil diganti", nil)
}

func AgentDashboard(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "token diperlukan")
		return
	}
	repo := repositories.StatsRepo{}
	stats, err := repo.AgentDashboard(p.ID, p.CommissionRate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	recent, err := repo.RecentBookingsByAgent(p.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", gin.H{"stats": stats, "recent_bookings": recent})
}
