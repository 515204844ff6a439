package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucSlot "github.com/BruksfildServices01/salon-scheduler/internal/usecase/slot"
)

type SlotHandler struct {
	create *ucSlot.CreateSlot
	list   *ucSlot.ListSlots
	toggle *ucSlot.ToggleAvailability
	remove *ucSlot.DeleteSlot
	log    Logger
}

func NewSlotHandler(
	create *ucSlot.CreateSlot,
	list *ucSlot.ListSlots,
	toggle *ucSlot.ToggleAvailability,
	remove *ucSlot.DeleteSlot,
	log Logger,
) *SlotHandler {
	return &SlotHandler{
		create: create,
		list:   list,
		toggle: toggle,
		remove: remove,
		log:    log,
	}
}

type CreateSlotRequest struct {
	BarberID string `json:"barber_id"`
	Date     string `json:"date" binding:"required"`      // YYYY-MM-DD
	FromTime string `json:"from_time" binding:"required"` // 9:00 AM
	ToTime   string `json:"to_time" binding:"required"`
	Note     string `json:"note"`
}

// ======================================================
// CREATE
// ======================================================
func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	me := callerFrom(c)

	// barbers only open their own schedule
	barberID := req.BarberID
	if me.isBarber() {
		barberID = me.UserID
	}

	s, err := h.create.Execute(c.Request.Context(), ucSlot.CreateSlotInput{
		SalonID:  me.SalonID,
		ActorID:  me.UserID,
		BarberID: barberID,
		Date:     req.Date,
		FromTime: req.FromTime,
		ToTime:   req.ToTime,
		Note:     req.Note,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSlotDTO(s, s.Status))
}

// ======================================================
// LIST
// ======================================================
func (h *SlotHandler) List(c *gin.Context) {
	general, _ := strconv.ParseBool(c.Query("general"))

	slots, err := h.list.Execute(c.Request.Context(), ucSlot.ListSlotsInput{
		SalonID:  callerFrom(c).SalonID,
		BarberID: c.Query("barber_id"),
		General:  general,
		Date:     c.Query("date"),
		Status:   c.Query("status"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// TOGGLE / DELETE
// ======================================================
func (h *SlotHandler) Toggle(c *gin.Context) {
	me := callerFrom(c)

	s, err := h.toggle.Execute(c.Request.Context(), ucSlot.ToggleAvailabilityInput{
		SalonID:   me.SalonID,
		ActorID:   me.UserID,
		ActorRole: me.Role,
		SlotID:    c.Param("id"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewSlotDTO(s, s.Status))
}

func (h *SlotHandler) Delete(c *gin.Context) {
	me := callerFrom(c)

	if err := h.remove.Execute(c.Request.Context(), me.SalonID, me.UserID, c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.NoContent(c)
}
