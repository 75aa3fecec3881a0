package router

import "github.com/gin-gonic/gin"

// Module is a feature slice (accounts, shipments, debug) that registers
// its own routes on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
