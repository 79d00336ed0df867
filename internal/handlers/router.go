package handlers

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Adbhut07/NightShift/internal/service"
)

func NewRouter(reg *service.RegistrationSvc, booking *service.BookingSvc) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware("nightshift"))

	ph := NewParticipantHandler(reg)
	bh := NewBookingHandler(booking)

	api := r.Group("/api")
	{
		api.POST("/register", ph.Register)
		api.POST("/select-date", bh.SelectDate)
		api.GET("/participants/:id/booking", bh.CurrentBooking)
		api.GET("/slots", bh.Occupancy)
	}
	return r
}
