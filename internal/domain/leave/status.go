package leave

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Request Type / Status
// ===============================

type Type string

const (
	TypeLeave      Type = "Leave"
	TypePermission Type = "Permission"
)

func (t Type) Valid() bool {
	return t == TypeLeave || t == TypePermission
}

type Status string

const (
	StatusWaiting  Status = "Waiting for Approval"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Domain Actions
// ===============================

// Approve marks the request approved. A previous decision may be revised.
func Approve(l *models.Leave, now time.Time) {
	l.Status = string(StatusApproved)
	l.RejectReason = ""
	l.DecidedAt = &now
}

// Reject marks the request rejected. The reason is mandatory.
func Reject(l *models.Leave, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "reject reason is required")
	}

	l.Status = string(StatusRejected)
	l.RejectReason = reason
	l.DecidedAt = &now
	return nil
}
