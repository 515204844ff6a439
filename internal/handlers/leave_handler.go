package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	ucLeave "github.com/BruksfildServices01/salon-scheduler/internal/usecase/leave"
)

type LeaveHandler struct {
	request      *ucLeave.RequestLeave
	decide       *ucLeave.DecideLeave
	list         *ucLeave.ListLeaves
	availability *ucLeave.CheckAvailability
	broker       realtime.Broker
	log          Logger
}

func NewLeaveHandler(
	request *ucLeave.RequestLeave,
	decide *ucLeave.DecideLeave,
	list *ucLeave.ListLeaves,
	availability *ucLeave.CheckAvailability,
	broker realtime.Broker,
	log Logger,
) *LeaveHandler {
	return &LeaveHandler{
		request:      request,
		decide:       decide,
		list:         list,
		availability: availability,
		broker:       broker,
		log:          log,
	}
}

type CreateLeaveRequest struct {
	BarberID string `json:"barber_id"`
	Type     string `json:"type" binding:"required"` // Leave | Permission
	Date     string `json:"date" binding:"required"`
	FromTime string `json:"from_time"`
	ToTime   string `json:"to_time"`
	Reason   string `json:"reason" binding:"required"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// REQUEST
// ======================================================
func (h *LeaveHandler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	me := callerFrom(c)
	barberID := req.BarberID
	if me.isBarber() {
		barberID = me.UserID
	}

	l, err := h.request.Execute(c.Request.Context(), ucLeave.RequestLeaveInput{
		SalonID:  me.SalonID,
		BarberID: barberID,
		ActorID:  me.UserID,
		Type:     req.Type,
		Date:     req.Date,
		FromTime: req.FromTime,
		ToTime:   req.ToTime,
		Reason:   req.Reason,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewLeaveDTO(l))
}

// ======================================================
// LIST
// ======================================================
func (h *LeaveHandler) List(c *gin.Context) {
	me := callerFrom(c)

	in := ucLeave.ListLeavesInput{
		SalonID:  me.SalonID,
		BarberID: c.Query("barber_id"),
		Status:   c.Query("status"),
	}
	if me.isBarber() {
		in.BarberID = me.UserID
	}

	leaves, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, dto.NewLeaveDTOs(leaves))
}

// ======================================================
// DECISIONS (OWNER)
// ======================================================
func (h *LeaveHandler) Approve(c *gin.Context) {
	me := callerFrom(c)

	l, err := h.decide.Approve(c.Request.Context(), me.SalonID, me.UserID, c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewLeaveDTO(l))
}

func (h *LeaveHandler) Reject(c *gin.Context) {
	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	me := callerFrom(c)

	l, err := h.decide.Reject(c.Request.Context(), me.SalonID, me.UserID, c.Param("id"), req.Reason)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewLeaveDTO(l))
}

// ======================================================
// AVAILABILITY
// ======================================================
func (h *LeaveHandler) Availability(c *gin.Context) {
	me := callerFrom(c)

	barberID := c.Query("barber_id")
	if me.isBarber() && barberID == "" {
		barberID = me.UserID
	}

	a, err := h.availability.Execute(c.Request.Context(), ucLeave.CheckAvailabilityInput{
		SalonID:  me.SalonID,
		BarberID: barberID,
		Date:     c.Query("date"),
		FromTime: c.Query("from_time"),
		ToTime:   c.Query("to_time"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, a)
}

// ======================================================
// LIVE FEED (WEBSOCKET)
// ======================================================

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Live streams the salon's leave events until the client goes away.
func (h *LeaveHandler) Live(c *gin.Context) {
	salonID := callerFrom(c).SalonID

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, err := h.broker.Subscribe(ctx, salonID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("leave live: upgrade: %v", err)
		return
	}
	defer conn.Close()

	// the reader only watches for close and pong frames
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Kind != realtime.KindLeave {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
