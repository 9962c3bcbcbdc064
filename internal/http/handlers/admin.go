package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AdminLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := authService(c).AdminLogin(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "login berhasil", gin.H{"token": res.Token, "admin": res.Admin})
}

func AdminDashboard(c *gin.Context) {
	adminID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	stats, err := repositories.StatsRepo{}.AdminDashboard(adminID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", stats)
}

func CreateAgent(c *gin.Context) {
	adminID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req services.AgentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.AgentService{RequestID: middleware.GetRequestID(c)}
	agent, err := svc.CreateAgent(adminID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "agen berhasil dibuat", agent)
}

func ListAgents(c *gin.Context) {
	adminID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	svc := services.AgentService{RequestID: middleware.GetRequestID(c)}
	agents, err := svc.ListAgents(adminID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", agents)
}

func UpdateAgent(c *gin.Context) {
	adminID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	agentID, ok := idParam(c)
	if !ok {
		return
	}
	var req services.AgentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.AgentService{RequestID: middleware.GetRequestID(c)}
	agent, err := svc.UpdateAgent(adminID, agentID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "agen berhasil diperbarui", agent)
}

func DeleteAgent(c *gin.Context) {
	adminID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	agentID, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.AgentService{RequestID: middleware.GetRequestID(c)}
	if err := svc.DeleteAgent(adminID, agentID); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "agen berhasil dihapus", nil)
}
