package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	ucSlot "github.com/BruksfildServices01/salon-scheduler/internal/usecase/slot"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	salons salondomain.Repository
	slots  *ucSlot.ListSlots
	log    Logger
}

func NewPublicHandler(
	salons salondomain.Repository,
	slots *ucSlot.ListSlots,
	log Logger,
) *PublicHandler {
	return &PublicHandler{salons: salons, slots: slots, log: log}
}

////////////////////////////////////////////////////////
// SALON
////////////////////////////////////////////////////////

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, err := h.salons.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	barbers, err := h.salons.ListBarbers(c.Request.Context(), salon.ID, "")
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	type publicBarber struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]publicBarber, 0, len(barbers))
	for _, b := range barbers {
		if b.Active {
			out = append(out, publicBarber{ID: b.ID, Name: b.Name})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":   salon,
		"barbers": out,
	})
}

////////////////////////////////////////////////////////
// BOOKABLE SLOTS
////////////////////////////////////////////////////////

// Slots lists the bookable slots of a salon for one date, today in the
// salon's zone when no date is given.
func (h *PublicHandler) Slots(c *gin.Context) {
	salon, err := h.salons.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	date := c.Query("date")
	if date == "" {
		date = todayInSalon(salon)
	}
	general, _ := strconv.ParseBool(c.Query("general"))

	slots, err := h.slots.Execute(c.Request.Context(), ucSlot.ListSlotsInput{
		SalonID:      salon.ID,
		BarberID:     c.Query("barber_id"),
		General:      general,
		Date:         date,
		BookableOnly: true,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}
