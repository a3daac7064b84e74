package v1

import (
	"github.com/pf9/region-wizard/internal/models"
)

// NewRegionFromModel converts a models.Region to an API Region. Passwords
// and SSH keys are dropped.
func NewRegionFromModel(r models.Region) Region {
	return Region{
		Id:       r.ID,
		Url:      r.URL,
		Name:     r.Name,
		Tenant:   r.Tenant,
		Username: r.Username,
		Proxy:    r.Proxy,
		DnsList:  r.DNSList,
		AuthType: string(r.AuthType),
	}
}

func NewRegionStatusFromModel(s models.RegionStatus) RegionStatus {
	status := RegionStatus{
		Region: NewRegionFromModel(s.Region),
		Auth:   RegionStatusAuthFailed,
	}
	if s.Auth != models.AuthStatusOK {
		return status
	}

	status.Auth = RegionStatusAuthOK
	regionType := string(s.Type)
	hostCount := s.HostCount
	status.Type = &regionType
	status.HostCount = &hostCount
	return status
}

// NewHostFromModel converts a models.Host to an API Host.
func NewHostFromModel(h models.Host) Host {
	host := Host{
		Id:        h.ID,
		RegionUrl: h.RegionURL,
		Ip:        h.IP,
		Source:    h.RecordSource,
	}

	switch p := h.Placement.(type) {
	case models.KVMPlacement:
		host.Type = string(p.RegionType())
		host.Kvm = &KVMRoles{
			BondConfig: p.BondConfig,
			Nova:       p.Nova == models.ToggleYes,
			Glance:     p.Glance == models.ToggleYes,
			Cinder:     p.Cinder == models.ToggleYes,
			Designate:  p.Designate == models.ToggleYes,
		}
	case models.KubernetesPlacement:
		host.Type = string(p.RegionType())
		host.Kubernetes = &KubernetesNode{
			NodeType:    string(p.NodeType),
			ClusterName: p.ClusterName,
		}
	}

	return host
}
