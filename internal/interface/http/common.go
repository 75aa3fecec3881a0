package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/logitrack-io/logitrack/pkg/response"
)

// internalError logs the underlying failure and answers with a generic
// message. The detail is echoed to the client only in debug mode;
// production callers never see internals.
func internalError(c *gin.Context, logger *logrus.Logger, err error, msg string) {
	if logger != nil {
		logger.WithError(err).WithField("path", c.FullPath()).Error(msg)
	}
	var detail any
	if gin.Mode() == gin.DebugMode && err != nil {
		detail = err.Error()
	}
	resp := response.Error[any](c, http.StatusInternalServerError, msg, detail)
	c.JSON(resp.Status, resp)
}
