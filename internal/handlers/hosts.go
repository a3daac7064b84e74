package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/pf9/region-wizard/api/v1"
	srvErrors "github.com/pf9/region-wizard/pkg/errors"
)

// GetHosts returns the hosts, restricted to one region when asked
// (GET /hosts)
func (h *Handler) GetHosts(c *gin.Context, params v1.GetHostsParams) {
	regionURL := ""
	if params.Region != nil {
		regionURL = *params.Region
		if _, err := h.inventorySrv.Region(regionURL); err != nil {
			if srvErrors.IsResourceNotFoundError(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			zap.S().Named("host_handler").Errorw("failed to find region", "url", regionURL, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to find region %s", regionURL)})
			return
		}
	}

	hosts, err := h.inventorySrv.Hosts(regionURL)
	if err != nil {
		zap.S().Named("host_handler").Errorw("failed to list hosts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hosts"})
		return
	}

	apiHosts := make([]v1.Host, 0, len(hosts))
	for _, host := range hosts {
		apiHosts = append(apiHosts, v1.NewHostFromModel(host))
	}

	c.JSON(http.StatusOK, v1.HostListResponse{
		Hosts: apiHosts,
		Total: len(apiHosts),
	})
}
