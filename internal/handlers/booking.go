package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adbhut07/NightShift/internal/domain"
	"github.com/Adbhut07/NightShift/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /api/select-date
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var in struct {
		ParticipantID string `json:"participant_id" binding:"required"`
		Date          string `json:"date" binding:"required"`
		Shift         string `json:"shift" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tr, err := h.svc.RequestSlot(c.Request.Context(), in.ParticipantID, in.Date, in.Shift)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	out := gin.H{
		"message": "Date selected successfully!",
		"booking": bookingJSON(&tr.Booking),
	}
	if tr.Previous != nil {
		out["replaced"] = bookingJSON(tr.Previous)
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/participants/:id/booking
func (h *BookingHandler) CurrentBooking(c *gin.Context) {
	b, err := h.svc.CurrentBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	if b == nil {
		c.JSON(http.StatusOK, gin.H{"booking": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bookingJSON(b)})
}

// GET /api/slots?date=YYYY-MM-DD&shift=morning
func (h *BookingHandler) Occupancy(c *gin.Context) {
	occupants, err := h.svc.Occupancy(c.Request.Context(), c.Query("date"), c.Query("shift"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	ids := make([]string, 0, len(occupants))
	for i := range occupants {
		ids = append(ids, occupants[i].ParticipantID)
	}
	c.JSON(http.StatusOK, gin.H{
		"occupancy":    len(occupants),
		"capacity":     domain.SlotCapacity,
		"participants": ids,
	})
}

func bookingJSON(b *domain.Booking) gin.H {
	return gin.H{
		"id":             b.ID,
		"participant_id": b.ParticipantID,
		"date":           b.SlotDate.Format(time.DateOnly),
		"shift":          b.Shift,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrUnknownShift),
		errors.Is(err, domain.ErrBadDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrParticipantExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps the client-facing wording the frontend already relies on.
// Unclassified errors stay opaque; their detail belongs in logs, not responses.
func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyBooked):
		return "You have already chosen this date and shift. Please choose another."
	case errors.Is(err, domain.ErrSlotFull):
		return "Only two users can choose the same date and shift. Please choose another."
	case statusFor(err) == http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return err.Error()
	}
}
