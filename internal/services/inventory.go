package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pf9/region-wizard/internal/models"
	"github.com/pf9/region-wizard/internal/store"
	srvErrors "github.com/pf9/region-wizard/pkg/errors"
)

// ControlPlane is the part of controlplane.Client the service needs.
type ControlPlane interface {
	AuthenticateRegion(ctx context.Context, r models.Region) (*models.Session, error)
	DetectType(ctx context.Context, regionURL string, s *models.Session) models.RegionType
	CountHosts(ctx context.Context, regionURL string, s *models.Session) int
}

// PlacementCollector supplies the attributes of a new host once the type
// of its region is known.
type PlacementCollector interface {
	CollectIP(ctx context.Context) (string, error)
	CollectKVM(ctx context.Context) (models.KVMPlacement, error)
	CollectKubernetes(ctx context.Context) (models.KubernetesPlacement, error)
}

// HostReport is the list of hosts of a region together with the type the
// region reports now.
type HostReport struct {
	Region models.Region
	Type   models.RegionType
	Hosts  []models.Host
}

type InventoryService struct {
	store        *store.Store
	controlPlane ControlPlane
}

func NewInventoryService(st *store.Store, cp ControlPlane) *InventoryService {
	return &InventoryService{store: st, controlPlane: cp}
}

func (s *InventoryService) Regions() ([]models.Region, error) {
	return s.store.Regions().List()
}

// Region returns the first region registered under url.
func (s *InventoryService) Region(url string) (*models.Region, error) {
	return s.store.Regions().Find(url)
}

// Hosts lists hosts, restricted to one region when regionURL is not empty.
func (s *InventoryService) Hosts(regionURL string) ([]models.Host, error) {
	if regionURL == "" {
		return s.store.Hosts().List()
	}
	return s.store.Hosts().List(store.ByRegion(regionURL))
}

// RegisterRegion stores the region as given, without contacting it, then
// authenticates and probes it once to report its status. Fields that look
// wrong are logged and stored anyway.
func (s *InventoryService) RegisterRegion(ctx context.Context, r models.Region) (*models.RegionStatus, error) {
	if err := r.Validate(); err != nil {
		zap.S().Named("inventory_service").Warnw("region stored with questionable fields", "url", r.URL, "error", err)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if err := s.store.Regions().Append(r); err != nil {
		return nil, fmt.Errorf("failed to save region %s: %w", r.URL, err)
	}
	zap.S().Named("inventory_service").Infow("region registered", "url", r.URL, "id", r.ID)

	status := s.regionStatus(ctx, r)
	return &status, nil
}

// RegisterHost attaches a new host to r. The region must have been
// registered before. Nothing is written when authentication fails, when the
// region is VMware, or when the collected attributes are invalid.
func (s *InventoryService) RegisterHost(ctx context.Context, r models.Region, c PlacementCollector) (*models.Host, error) {
	if _, err := s.store.Regions().Find(r.URL); err != nil {
		return nil, err
	}

	session, err := s.controlPlane.AuthenticateRegion(ctx, r)
	if err != nil {
		return nil, srvErrors.NewAuthenticationFailedError(r.URL, err)
	}

	regionType := s.controlPlane.DetectType(ctx, r.URL, session)
	if !regionType.Supported() {
		zap.S().Named("inventory_service").Warnw("host add abandoned", "url", r.URL, "type", regionType)
		return nil, srvErrors.NewUnsupportedRegionError(r.URL, string(regionType))
	}

	ip, err := c.CollectIP(ctx)
	if err != nil {
		return nil, err
	}

	var placement models.Placement
	switch regionType {
	case models.RegionTypeKVM:
		placement, err = c.CollectKVM(ctx)
	case models.RegionTypeKubernetes:
		placement, err = c.CollectKubernetes(ctx)
	}
	if err != nil {
		return nil, err
	}

	host := models.Host{
		ID:           uuid.NewString(),
		RegionURL:    r.URL,
		IP:           ip,
		RecordSource: models.RecordSourceUserDefined,
		Placement:    placement,
	}
	if err := host.Validate(); err != nil {
		return nil, srvErrors.NewValidationError(err)
	}

	if err := s.store.Hosts().Append(host); err != nil {
		return nil, fmt.Errorf("failed to save host %s: %w", host.IP, err)
	}
	zap.S().Named("inventory_service").Infow("host registered", "url", r.URL, "ip", host.IP, "type", regionType)

	return &host, nil
}

// StatusSnapshot authenticates against each region in turn. A region that
// fails authentication gets an AuthStatusFailed row and the next region is
// still processed.
func (s *InventoryService) StatusSnapshot(ctx context.Context, regions []models.Region) []models.RegionStatus {
	statuses := make([]models.RegionStatus, 0, len(regions))
	for _, r := range regions {
		statuses = append(statuses, s.regionStatus(ctx, r))
	}
	return statuses
}

func (s *InventoryService) HostReport(ctx context.Context, r models.Region) (*HostReport, error) {
	hosts, err := s.store.Hosts().List(store.ByRegion(r.URL))
	if err != nil {
		return nil, err
	}
	if len(hosts) == 0 {
		return &HostReport{Region: r, Hosts: hosts}, nil
	}

	session, err := s.controlPlane.AuthenticateRegion(ctx, r)
	if err != nil {
		return nil, srvErrors.NewAuthenticationFailedError(r.URL, err)
	}

	return &HostReport{
		Region: r,
		Type:   s.controlPlane.DetectType(ctx, r.URL, session),
		Hosts:  hosts,
	}, nil
}

func (s *InventoryService) regionStatus(ctx context.Context, r models.Region) models.RegionStatus {
	status := models.RegionStatus{Region: r, Auth: models.AuthStatusFailed}

	session, err := s.controlPlane.AuthenticateRegion(ctx, r)
	if err != nil {
		zap.S().Named("inventory_service").Infow("region authentication failed", "url", r.URL)
		return status
	}

	status.Auth = models.AuthStatusOK
	status.Type = s.controlPlane.DetectType(ctx, r.URL, session)
	status.HostCount = s.controlPlane.CountHosts(ctx, r.URL, session)
	return status
}
