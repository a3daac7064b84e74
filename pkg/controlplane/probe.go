package controlplane

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pf9/region-wizard/internal/models"
)

// DetectType classifies the region by probing capability endpoints in a
// fixed order: Kubernetes first, then KVM, and VMware when neither answers.
// Probe failures of any kind count as "not this flavor", so the result is
// always one of the three types.
func (c *Client) DetectType(ctx context.Context, regionURL string, s *models.Session) models.RegionType {
	if c.qbertResponding(ctx, regionURL, s) {
		return models.RegionTypeKubernetes
	}
	if c.credsmanagerResponding(ctx, regionURL, s) {
		return models.RegionTypeKVM
	}
	return models.RegionTypeVMware
}

// GET /qbert/v3/{projectId}/nodes
func (c *Client) qbertResponding(ctx context.Context, regionURL string, s *models.Session) bool {
	return c.responding(ctx, endpoint(regionURL, fmt.Sprintf("qbert/v3/%s/nodes", s.ProjectID)), s.Token)
}

// GET /credsmanager
func (c *Client) credsmanagerResponding(ctx context.Context, regionURL string, s *models.Session) bool {
	ctx, cancel := context.WithTimeout(ctx, c.kvmProbeTimeout)
	defer cancel()
	return c.responding(ctx, endpoint(regionURL, "credsmanager"), s.Token)
}

func (c *Client) responding(ctx context.Context, url, token string) bool {
	resp, err := c.get(ctx, url, token)
	if err != nil {
		zap.S().Named("controlplane").Debugw("probe failed", "url", url, "error", err)
		return false
	}
	defer closeBody(resp)
	return resp.StatusCode == http.StatusOK
}

// CountHosts returns the number of hosts known to the region's resource
// manager, or 0 when the count cannot be obtained. It is for display only.
// GET /resmgr/v1/hosts
func (c *Client) CountHosts(ctx context.Context, regionURL string, s *models.Session) int {
	n, err := c.countHosts(ctx, regionURL, s)
	if err != nil {
		zap.S().Named("controlplane").Debugw("failed to count hosts", "url", regionURL, "error", err)
		return 0
	}
	return n
}

func (c *Client) countHosts(ctx context.Context, regionURL string, s *models.Session) (int, error) {
	resp, err := c.get(ctx, endpoint(regionURL, "resmgr/v1/hosts"), s.Token)
	if err != nil {
		return 0, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var hosts []json.RawMessage
	if err := json.Unmarshal(data, &hosts); err != nil {
		return 0, err
	}
	return len(hosts), nil
}
