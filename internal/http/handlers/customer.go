package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
)

type registerRequest struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	IDType   string `json:"id_type"`
	IDNumber string `json:"id_number"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
}

func CustomerRegister(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	cust := models.Customer{
		FullName: req.FullName,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		IDType:   req.IDType,
		IDNumber: req.IDNumber,
		Gender:   req.Gender,
		Country:  req.Country,
	}
	res, err := authService(c).CustomerRegister(cust, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "registrasi berhasil", gin.H{"token": res.Token, "customer": res.Cust})
}

func CustomerLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := authService(c).CustomerLogin(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "login berhasil", gin.H{"token": res.Token, "customer": res.Cust})
}

func CustomerProfile(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	cust, err := repositories.CustomerRepo{}.GetByID(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", cust)
}

func UpdateCustomerProfile(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.FullName == "" {
		RespondError(c, http.StatusBadRequest, "nama lengkap wajib diisi")
		return
	}
	repo := repositories.CustomerRepo{}
	cust := models.Customer{
		FullName: req.FullName,
		Address:  req.Address,
		Phone:    req.Phone,
		IDType:   req.IDType,
		IDNumber: req.IDNumber,
		Gender:   req.Gender,
		Country:  req.Country,
	}
	if err := repo.UpdateProfile(customerID, cust); err != nil {
		RespondDomainError(c, err)
		return
	}
	updated, err := repo.GetByID(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "profil berhasil diperbarui", updated)
}

func CustomerChangePassword(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := authService(c).ChangePassword(domain.RoleCustomer, customerID, req.CurrentPassword, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "password berhasil diganti", nil)
}

// CustomerBookings lists every booking the customer has, package and
// vehicle rows together.
func CustomerBookings(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	list, err := repositories.BookingRepo{}.ListAllByCustomer(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}
