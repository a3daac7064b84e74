package v1

// Region is a registered region without its credentials.
type Region struct {
	Id       string `json:"id,omitempty"`
	Url      string `json:"url"`
	Name     string `json:"name"`
	Tenant   string `json:"tenant"`
	Username string `json:"username"`
	Proxy    string `json:"proxy,omitempty"`
	DnsList  string `json:"dnsList,omitempty"`
	AuthType string `json:"authType"`
}

type RegionStatusAuth string

const (
	RegionStatusAuthOK     RegionStatusAuth = "OK"
	RegionStatusAuthFailed RegionStatusAuth = "Failed"
)

type RegionStatus struct {
	Region Region           `json:"region"`
	Auth   RegionStatusAuth `json:"auth"`
	// Type and HostCount are omitted when Auth is Failed.
	Type      *string `json:"type,omitempty"`
	HostCount *int    `json:"hostCount,omitempty"`
}

type KVMRoles struct {
	BondConfig string `json:"bondConfig"`
	Nova       bool   `json:"nova"`
	Glance     bool   `json:"glance"`
	Cinder     bool   `json:"cinder"`
	Designate  bool   `json:"designate"`
}

type KubernetesNode struct {
	NodeType    string `json:"nodeType"`
	ClusterName string `json:"clusterName,omitempty"`
}

type Host struct {
	Id         string          `json:"id,omitempty"`
	RegionUrl  string          `json:"regionUrl"`
	Ip         string          `json:"ip"`
	Source     string          `json:"source"`
	Type       string          `json:"type"`
	Kvm        *KVMRoles       `json:"kvm,omitempty"`
	Kubernetes *KubernetesNode `json:"kubernetes,omitempty"`
}

type RegionListResponse struct {
	Regions []Region `json:"regions"`
	Total   int      `json:"total"`
}

type RegionStatusResponse struct {
	Regions []RegionStatus `json:"regions"`
}

type HostListResponse struct {
	Hosts []Host `json:"hosts"`
	Total int    `json:"total"`
}

// GetHostsParams defines parameters for GetHosts.
type GetHostsParams struct {
	Region *string `form:"region,omitempty" json:"region,omitempty"`
}
