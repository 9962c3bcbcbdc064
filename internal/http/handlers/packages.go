package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"
)

func ListPackages(c *gin.Context) {
	f := repositories.PackageFilter{
		Destination:   c.Query("destination"),
		StartLocation: c.Query("start_location"),
		MinPrice:      c.Query("min_price"),
		MaxPrice:      c.Query("max_price"),
		Duration:      c.Query("duration"),
	}
	list, err := repositories.PackageRepo{}.List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

func GetPackage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	pkg, err := repositories.PackageRepo{}.GetAvailableByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", pkg)
}

func BookPackage(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req services.PackageBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.BookPackage(customerID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "booking berhasil", booking)
}

func MyPackageBookings(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	list, err := repositories.BookingRepo{}.ListPackageBookingsByCustomer(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

func GetBooking(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	booking, err := repositories.BookingRepo{}.GetOwnedDetail(id, customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", booking)
}

func CancelBooking(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.CancelBooking(customerID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "booking berhasil dibatalkan", nil)
}

// BookingReceipt streams the PDF receipt for an owned booking.
func BookingReceipt(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateBookingReceipt(id, customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
