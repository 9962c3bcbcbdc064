package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/repositories"
)

func ListDestinations(c *gin.Context) {
	list, err := repositories.DestinationRepo{}.List(c.Query("country"), c.Query("search"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

// PopularDestinations ranks destinations by booked packages.
func PopularDestinations(c *gin.Context) {
	list, err := repositories.DestinationRepo{}.Popular()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", list)
}

// GetDestination returns the destination plus related packages and hotels.
// The relations are name matches, so missing ones are not an error.
func GetDestination(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.DestinationRepo{}
	d, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	pkgs, err := repo.RelatedPackages(d.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	hotels, err := repo.RelatedHotels(d.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "", gin.H{
		"destination": d,
		"packages":    pkgs,
		"hotels":      hotels,
	})
}
