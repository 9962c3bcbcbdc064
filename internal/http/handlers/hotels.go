package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"
)

func ListHotels(c *gin.Context) {
	f := repositories.HotelFilter{
		Location:  c.Query("location"),
		MinPrice:  c.Query("min_price"),
		MaxPrice:  c.Query("max_price"),
		MinRating: c.Query("rating"),
	}
	list, err := repositories.HotelRepo{}.List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

func GetHotel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h, err := repositories.HotelRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", h)
}

func BookHotel(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req services.HotelBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.BookHotel(customerID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusCreated, "booking hotel berhasil", booking)
}

func MyHotelBookings(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	list, err := repositories.HotelBookingRepo{}.ListByCustomer(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

func GetHotelBooking(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	booking, err := repositories.HotelBookingRepo{}.GetOwnedDetail(id, customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", booking)
}

func CancelHotelBooking(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.CancelHotelBooking(customerID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "booking hotel berhasil dibatalkan", nil)
}

// HotelInvoice streams the PDF invoice for an owned hotel booking.
func HotelInvoice(c *gin.Context) {
	customerID, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateHotelInvoice(id, customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
