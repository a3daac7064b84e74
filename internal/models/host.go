package models

import (
	"encoding/json"
	"fmt"
)

const RecordSourceUserDefined = "User-Defined"

// Toggle is the y/n answer used for the KVM role flags.
type Toggle string

const (
	ToggleYes Toggle = "y"
	ToggleNo  Toggle = "n"
)

// Label maps a toggle to its display form.
func (t Toggle) Label() string {
	switch t {
	case ToggleYes:
		return "Enabled"
	case ToggleNo:
		return "Disabled"
	default:
		return "failed-to-map"
	}
}

type NodeType string

const (
	NodeTypeMaster NodeType = "master"
	NodeTypeWorker NodeType = "worker"
)

// Placement holds the flavor specific attributes of a host. It is either a
// KVMPlacement or a KubernetesPlacement.
type Placement interface {
	RegionType() RegionType
	isPlacement()
}

type KVMPlacement struct {
	BondConfig string `validate:"-"`
	Nova       Toggle `validate:"oneof=y n"`
	Glance     Toggle `validate:"oneof=y n"`
	Cinder     Toggle `validate:"oneof=y n"`
	Designate  Toggle `validate:"oneof=y n"`
}

func (KVMPlacement) RegionType() RegionType { return RegionTypeKVM }
func (KVMPlacement) isPlacement()           {}

type KubernetesPlacement struct {
	NodeType NodeType `validate:"oneof=master worker"`
	// ClusterName is empty when the host is not assigned to a cluster yet.
	ClusterName string
}

func (KubernetesPlacement) RegionType() RegionType { return RegionTypeKubernetes }
func (KubernetesPlacement) isPlacement()           {}

// Host is a machine to attach to the region identified by RegionURL.
type Host struct {
	ID           string
	RegionURL    string `validate:"required"`
	IP           string `validate:"required"`
	RecordSource string
	Placement    Placement `validate:"-"`
}

// KVM returns the KVM placement, if the host has one.
func (h Host) KVM() (KVMPlacement, bool) {
	p, ok := h.Placement.(KVMPlacement)
	return p, ok
}

// Kubernetes returns the Kubernetes placement, if the host has one.
func (h Host) Kubernetes() (KubernetesPlacement, bool) {
	p, ok := h.Placement.(KubernetesPlacement)
	return p, ok
}

// hostRecord is the flat on-disk layout of hosts.conf. The fields of the
// flavor a host does not use are written as empty strings.
type hostRecord struct {
	ID           string     `json:"id,omitempty"`
	RegionURL    string     `json:"du_url"`
	RegionType   RegionType `json:"region_type,omitempty"`
	IP           string     `json:"ip"`
	RecordSource string     `json:"record_source"`
	BondConfig   string     `json:"bond_config"`
	Nova         string     `json:"nova"`
	Glance       string     `json:"glance"`
	Cinder       string     `json:"cinder"`
	Designate    string     `json:"designate"`
	NodeType     string     `json:"node_type"`
	ClusterName  string     `json:"cluster_name"`
}

func (h Host) MarshalJSON() ([]byte, error) {
	rec := hostRecord{
		ID:           h.ID,
		RegionURL:    h.RegionURL,
		IP:           h.IP,
		RecordSource: h.RecordSource,
	}

	switch p := h.Placement.(type) {
	case KVMPlacement:
		rec.RegionType = RegionTypeKVM
		rec.BondConfig = p.BondConfig
		rec.Nova = string(p.Nova)
		rec.Glance = string(p.Glance)
		rec.Cinder = string(p.Cinder)
		rec.Designate = string(p.Designate)
	case KubernetesPlacement:
		rec.RegionType = RegionTypeKubernetes
		rec.NodeType = string(p.NodeType)
		rec.ClusterName = p.ClusterName
	case nil:
	default:
		return nil, fmt.Errorf("unknown host placement %T", p)
	}

	return json.Marshal(rec)
}

func (h *Host) UnmarshalJSON(data []byte) error {
	var rec hostRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	*h = Host{
		ID:           rec.ID,
		RegionURL:    rec.RegionURL,
		IP:           rec.IP,
		RecordSource: rec.RecordSource,
	}

	kind := rec.RegionType
	if kind == "" {
		// records written before the discriminator existed
		kind = RegionTypeKVM
		if rec.NodeType != "" {
			kind = RegionTypeKubernetes
		}
	}

	switch kind {
	case RegionTypeKubernetes:
		h.Placement = KubernetesPlacement{
			NodeType:    NodeType(rec.NodeType),
			ClusterName: rec.ClusterName,
		}
	case RegionTypeKVM:
		h.Placement = KVMPlacement{
			BondConfig: rec.BondConfig,
			Nova:       Toggle(rec.Nova),
			Glance:     Toggle(rec.Glance),
			Cinder:     Toggle(rec.Cinder),
			Designate:  Toggle(rec.Designate),
		}
	default:
		return fmt.Errorf("unknown host region type: %s", kind)
	}

	return nil
}
