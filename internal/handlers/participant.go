package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adbhut07/NightShift/internal/domain"
	"github.com/Adbhut07/NightShift/internal/service"
)

type ParticipantHandler struct {
	reg *service.RegistrationSvc
}

func NewParticipantHandler(reg *service.RegistrationSvc) *ParticipantHandler {
	return &ParticipantHandler{reg: reg}
}

// POST /api/register
func (h *ParticipantHandler) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		HouseNo  string `json:"houseNo" binding:"required"`
		Block    string `json:"block"`
		MobileNo string `json:"mobileNo"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.reg.Register(c.Request.Context(), in.Name, in.HouseNo, in.Block, in.MobileNo)
	if errors.Is(err, domain.ErrParticipantExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "User with the same name and house number already exists."})
		return
	}
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "User registered successfully!",
		"participant_id": p.ID,
	})
}
