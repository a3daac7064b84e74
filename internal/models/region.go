package models

import "fmt"

type RegionType string

const (
	RegionTypeKubernetes RegionType = "Kubernetes"
	RegionTypeKVM        RegionType = "KVM"
	RegionTypeVMware     RegionType = "VMware"
)

// Supported reports whether hosts can be attached to a region of this type.
func (t RegionType) Supported() bool {
	return t == RegionTypeKubernetes || t == RegionTypeKVM
}

type AuthType string

const (
	AuthTypeSimple AuthType = "simple"
	AuthTypeSSHKey AuthType = "ssh-key"
)

func ParseAuthType(s string) (AuthType, error) {
	switch s {
	case "simple":
		return AuthTypeSimple, nil
	case "ssh-key":
		return AuthTypeSSHKey, nil
	default:
		return "", fmt.Errorf("invalid auth type: %s", s)
	}
}

// Region is a registered control-plane endpoint. The json keys match the
// du.conf layout written by earlier versions of the wizard.
type Region struct {
	ID           string   `json:"id,omitempty"`
	URL          string   `json:"url" validate:"required,http_url"`
	Username     string   `json:"username" validate:"required"`
	Password     string   `json:"password"`
	Tenant       string   `json:"tenant" validate:"required"`
	Name         string   `json:"region"`
	Proxy        string   `json:"proxy"`
	DNSList      string   `json:"dns_list"`
	AuthType     AuthType `json:"auth_type" validate:"oneof=simple ssh-key"`
	AuthUsername string   `json:"auth_username"`
	AuthPassword string   `json:"auth_password" validate:"required_if=AuthType simple,excluded_if=AuthType ssh-key"`
	AuthSSHKey   string   `json:"auth_ssh_key" validate:"required_if=AuthType ssh-key,excluded_if=AuthType simple"`
	BondIfName   string   `json:"bond_ifname"`
	BondMode     string   `json:"bond_mode"`
	BondMTU      string   `json:"bond_mtu"`
}

// Redacted returns a copy of the region without secrets.
func (r Region) Redacted() Region {
	r.Password = ""
	r.AuthPassword = ""
	r.AuthSSHKey = ""
	return r
}

// Session is the scoped token obtained from a region's identity service.
// It lives for a single operation and is never stored.
type Session struct {
	ProjectID string
	Token     string
}

type AuthStatus string

const (
	AuthStatusOK     AuthStatus = "OK"
	AuthStatusFailed AuthStatus = "Failed"
)

// RegionStatus is one row of a status snapshot. Type and HostCount are
// only meaningful when Auth is AuthStatusOK.
type RegionStatus struct {
	Region    Region
	Auth      AuthStatus
	Type      RegionType
	HostCount int
}
