package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the skill endpoint.
func RegisterRoutes(r gin.IRoutes, h Handler, mws ...gin.HandlerFunc) {
	r.POST("/alexa", append(mws, h.Handle)...)
}
