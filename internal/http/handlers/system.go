package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "travel-backend/internal/config"
)

func Health(c *gin.Context) {
	Respond(c, http.StatusOK, "backend travel berjalan", gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "database belum terhubung")
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM customer").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal query ke database")
		return
	}
	Respond(c, http.StatusOK, "koneksi database OK", gin.H{"customers_in_db": count})
}
