package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// writeError maps business errors to their status. Anything else is logged
// and answered with a generic 500.
func writeError(c *gin.Context, log Logger, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		httperr.Write(c, httperr.StatusFor(be.Code), be.Code, msg)
		return
	}

	log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	httperr.Internal(c, "internal_error", "internal server error")
}

func badRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
}
