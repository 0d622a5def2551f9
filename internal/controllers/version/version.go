// Package version serves the build information of the running server.
package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/spendsense/backend/internal/httputil"
)

// Response is the body of GET /version.
type Response struct {
	Data Info `json:"data"` // Build information
}

// Info describes the running build.
type Info struct {
	Version string `json:"version" example:"1.4.0"` // Release of the spendsense backend, set by the linker at build time
	Go      string `json:"go" example:"go1.25.5"`   // Go toolchain the binary was built with
}

type handler struct {
	info Info
}

// RegisterRoutes serves the build information for the release on r.
func RegisterRoutes(r *gin.RouterGroup, release string) {
	h := handler{info: Info{Version: release, Go: runtime.Version()}}

	r.GET("", h.get)
	r.OPTIONS("", options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Build information
// @Description	Returns the release and Go version the server was built with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func (h handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: h.info})
}
