package httperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create slot: %w", ErrBusinessMsg(CodeSlotConflict, "9:00 AM - 9:30 AM"))

	assert.True(t, IsBusiness(err, CodeSlotConflict))
	assert.False(t, IsBusiness(err, CodeSchedulingBlocked))

	be, ok := AsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, "9:00 AM - 9:30 AM", be.Message)
	assert.Equal(t, "slot_conflict: 9:00 AM - 9:30 AM", be.Error())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(CodeInvalidTimeRange))
	assert.Equal(t, http.StatusConflict, StatusFor(CodeSchedulingBlocked))
	assert.Equal(t, http.StatusNotFound, StatusFor(CodeSlotNotFound))
	assert.Equal(t, http.StatusForbidden, StatusFor(CodeForbidden))
}
