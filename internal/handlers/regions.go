package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/pf9/region-wizard/api/v1"
)

// GetRegions returns the registered regions without credentials
// (GET /regions)
func (h *Handler) GetRegions(c *gin.Context) {
	regions, err := h.inventorySrv.Regions()
	if err != nil {
		zap.S().Named("region_handler").Errorw("failed to list regions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list regions"})
		return
	}

	apiRegions := make([]v1.Region, 0, len(regions))
	for _, r := range regions {
		apiRegions = append(apiRegions, v1.NewRegionFromModel(r))
	}

	c.JSON(http.StatusOK, v1.RegionListResponse{
		Regions: apiRegions,
		Total:   len(apiRegions),
	})
}

// GetRegionStatus authenticates against every region
// (GET /regions/status)
func (h *Handler) GetRegionStatus(c *gin.Context) {
	regions, err := h.inventorySrv.Regions()
	if err != nil {
		zap.S().Named("region_handler").Errorw("failed to list regions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list regions"})
		return
	}

	statuses := h.inventorySrv.StatusSnapshot(c.Request.Context(), regions)

	resp := v1.RegionStatusResponse{Regions: make([]v1.RegionStatus, 0, len(statuses))}
	for _, s := range statuses {
		resp.Regions = append(resp.Regions, v1.NewRegionStatusFromModel(s))
	}
	c.JSON(http.StatusOK, resp)
}
