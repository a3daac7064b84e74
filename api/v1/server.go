package v1

import (
	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List registered regions
	// (GET /regions)
	GetRegions(c *gin.Context)
	// Authenticate every region and report its type and host count
	// (GET /regions/status)
	GetRegionStatus(c *gin.Context)
	// List hosts, optionally of a single region
	// (GET /hosts)
	GetHosts(c *gin.Context, params GetHostsParams)
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/regions", si.GetRegions)
	router.GET("/regions/status", si.GetRegionStatus)
	router.GET("/hosts", func(c *gin.Context) {
		var params GetHostsParams
		if region, ok := c.GetQuery("region"); ok {
			params.Region = &region
		}
		si.GetHosts(c, params)
	})
}
