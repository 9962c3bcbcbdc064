package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"
)

func ListVehicles(c *gin.Context) {
	f := repositories.VehicleFilter{
		Source:        c.Query("source"),
		Destination:   c.Query("destination"),
		BusType:       c.Query("bus_type"),
		DepartureDate: c.Query("departure_date"),
	}
	list, err := repositories.VehicleRepo{}.List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

func GetVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := repositories.VehicleRepo{}.GetActiveByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", v)
}

func BookVehicle(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req services.VehicleBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.BookVehicle(customerID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "booking berhasil, menunggu konfirmasi", booking)
}

func MyVehicles(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	svc := services.VehicleService{RequestID: middleware.GetRequestID(c)}
	list, err := svc.ListMine(agentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

func CreateVehicle(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req services.VehicleInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.VehicleService{RequestID: middleware.GetRequestID(c)}
	v, err := svc.Create(agentID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "kendaraan berhasil ditambahkan", v)
}

func UpdateVehicle(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.VehicleInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.VehicleService{RequestID: middleware.GetRequestID(c)}
	v, err := svc.Update(agentID, id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "kendaraan berhasil diperbarui", v)
}

func DeleteVehicle(c *gin.Context) {
	agentID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.VehicleService{RequestID: middleware.GetRequestID(c)}
	if err := svc.Delete(agentID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "kendaraan berhasil dihapus", nil)
}
