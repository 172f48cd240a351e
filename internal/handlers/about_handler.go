package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AboutResponse describes the running service.
type AboutResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// About handles the about endpoint
// @Summary     About
// @Description Static information about the service
// @Tags        about
// @Produce     json
// @Success     200 {object} AboutResponse "Service information"
// @Router      /about [get]
func About(c *gin.Context) {
	c.JSON(http.StatusOK, AboutResponse{
		Name:        "costmanager",
		Version:     "1.0",
		Description: "Tracks per-user costs and produces monthly category reports",
	})
}
