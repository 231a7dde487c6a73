package server

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-pathtracer/pkg/core"
)

// WebLogger implements core.Logger by forwarding render messages to the server's logger,
// tagged with the render they belong to
type WebLogger struct {
	renderID string
	logger   echo.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, logger echo.Logger) core.Logger {
	return &WebLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	wl.logger.Printf("[%s] %s", wl.renderID, message)
}
