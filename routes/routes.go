package routes

import (
	"net/http"

	"HealthHubIPD/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, admission *controllers.AdmissionController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	controllers.Admission(r, admission)
}
