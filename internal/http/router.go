package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "travel-backend/internal/config"
	h "travel-backend/internal/http/handlers"
	"travel-backend/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route tidak ditemukan",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	authed := middleware.Authenticate(h.AuthSecret())

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Admin
		admin := api.Group("/admin")
		admin.POST("/login", h.AdminLogin)
		adminAuthed := admin.Group("", authed, middleware.RequireAdmin())
		adminAuthed.GET("/dashboard", h.AdminDashboard)
		adminAuthed.POST("/agents", h.CreateAgent)
		adminAuthed.GET("/agents", h.ListAgents)
		adminAuthed.PUT("/agents/:id", h.UpdateAgent)
		adminAuthed.DELETE("/agents/:id", h.DeleteAgent)

		// Agent
		agent := api.Group("/agent")
		agent.POST("/login", h.AgentLogin)
		agentAuthed := agent.Group("", authed, middleware.RequireAgent())
		agentAuthed.GET("/profile", h.AgentProfile)
		agentAuthed.PUT("/profile", h.UpdateAgentProfile)
		agentAuthed.PUT("/change-password", h.AgentChangePassword)
		agentAuthed.GET("/dashboard", h.AgentDashboard)

		// Customer
		customer := api.Group("/customer")
		customer.POST("/register", h.CustomerRegister)
		customer.POST("/login", h.CustomerLogin)
		customerAuthed := customer.Group("", authed, middleware.RequireCustomer())
		customerAuthed.GET("/profile", h.CustomerProfile)
		customerAuthed.PUT("/profile", h.UpdateCustomerProfile)
		customerAuthed.PUT("/change-password", h.CustomerChangePassword)
		customerAuthed.GET("/bookings", h.CustomerBookings)

		// Packages (public listing + customer bookings)
		packages := api.Group("/packages")
		packages.GET("", h.ListPackages)
		packages.GET("/:id", h.GetPackage)
		pkgCustomer := packages.Group("", authed, middleware.RequireCustomer())
		pkgCustomer.POST("/book", h.BookPackage)
		pkgCustomer.GET("/bookings/my", h.MyPackageBookings)
		pkgCustomer.GET("/bookings/:id", h.GetBooking)
		pkgCustomer.PUT("/bookings/:id/cancel", h.CancelBooking)
		pkgCustomer.GET("/bookings/:id/receipt", h.BookingReceipt)

		// Vehicles (public listing + customer booking + agent CRUD)
		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.POST("/book", authed, middleware.RequireCustomer(), h.BookVehicle)
		vehAgent := vehicles.Group("/agent", authed, middleware.RequireAgent())
		vehAgent.GET("/my", h.MyVehicles)
		vehAgent.POST("", h.CreateVehicle)
		vehAgent.PUT("/:id", h.UpdateVehicle)
		vehAgent.DELETE("/:id", h.DeleteVehicle)

		// Hotels (public listing + customer bookings)
		hotels := api.Group("/hotels")
		hotels.GET("", h.ListHotels)
		hotels.GET("/:id", h.GetHotel)
		hotelCustomer := hotels.Group("", authed, middleware.RequireCustomer())
		hotelCustomer.POST("/book", h.BookHotel)
		hotelCustomer.GET("/bookings/my", h.MyHotelBookings)
		hotelCustomer.GET("/bookings/:id", h.GetHotelBooking)
		hotelCustomer.PUT("/bookings/:id/cancel", h.CancelHotelBooking)
		hotelCustomer.GET("/bookings/:id/invoice", h.HotelInvoice)

		// Destinations (public)
		destinations := api.Group("/destinations")
		destinations.GET("", h.ListDestinations)
		destinations.GET("/popular", h.PopularDestinations)
		destinations.GET("/:id", h.GetDestination)
	}

	return r
}
