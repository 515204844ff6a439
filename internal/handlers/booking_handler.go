package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	confirm *ucBooking.ConfirmBooking
	list    *ucBooking.ListBookings
	log     Logger
}

func NewBookingHandler(
	confirm *ucBooking.ConfirmBooking,
	list *ucBooking.ListBookings,
	log Logger,
) *BookingHandler {
	return &BookingHandler{confirm: confirm, list: list, log: log}
}

// ConfirmBookingRequest is sent once the payment provider has reported
// success for the slot.
type ConfirmBookingRequest struct {
	SlotID string  `json:"slot_id" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), ucBooking.ConfirmBookingInput{
		SlotID: req.SlotID,
		UserID: callerFrom(c).UserID,
		Amount: req.Amount,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBookingDTO(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	me := callerFrom(c)

	bookings, err := h.list.Execute(c.Request.Context(), ucBooking.ListBookingsInput{
		Role:    me.Role,
		UserID:  me.UserID,
		SalonID: me.SalonID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, dto.NewBookingDTOs(bookings))
}
