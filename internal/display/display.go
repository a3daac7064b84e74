package display

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/pf9/region-wizard/internal/models"
	"github.com/pf9/region-wizard/internal/services"
)

const (
	noRegionsHint = "No regions have been defined yet (run 'Add Region')"
	noHostsHint   = "No hosts have been defined yet (run 'Add Host')"
	unassigned    = "Unassigned"
	failedToMap   = "failed-to-map"
)

// Printer renders inventory tables on out.
type Printer struct {
	out io.Writer
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Regions prints one row per region status. The host count is "-" for a
// region that could not be authenticated.
func (p *Printer) Regions(statuses []models.RegionStatus) {
	if len(statuses) == 0 {
		fmt.Fprintln(p.out, noRegionsHint)
		return
	}

	t := p.table("DU URL", "Auth", "Region Type", "Region Name", "Tenant", "Proxy", "# Hosts")
	for _, s := range statuses {
		hosts, regionType := "-", ""
		if s.Auth == models.AuthStatusOK {
			hosts = strconv.Itoa(s.HostCount)
			regionType = string(s.Type)
		}
		row(t, s.Region.URL, authLabel(s.Auth), regionType, s.Region.Name, s.Region.Tenant, s.Region.Proxy, hosts)
	}
	_ = t.Flush()
}

// RegionList prints the registered regions without contacting them.
func (p *Printer) RegionList(regions []models.Region) {
	if len(regions) == 0 {
		fmt.Fprintln(p.out, noRegionsHint)
		return
	}

	t := p.table("DU URL", "Region Name", "Tenant", "Username", "Auth Type")
	for _, r := range regions {
		row(t, r.URL, r.Name, r.Tenant, r.Username, string(r.AuthType))
	}
	_ = t.Flush()
}

// Hosts prints the hosts of a region using the columns of its type.
func (p *Printer) Hosts(report *services.HostReport) {
	if len(report.Hosts) == 0 {
		fmt.Fprintln(p.out, noHostsHint)
		return
	}

	switch report.Type {
	case models.RegionTypeKVM:
		p.kvmHosts(report.Hosts)
	case models.RegionTypeKubernetes:
		p.kubernetesHosts(report.Hosts)
	default:
		fmt.Fprintf(p.out, "Hosts cannot be shown for %s regions\n", report.Type)
	}
}

func (p *Printer) kvmHosts(hosts []models.Host) {
	t := p.table("IP", "Source", "Nova", "Glance", "Cinder", "Designate", "Bond Config")
	for _, h := range hosts {
		kvm, ok := h.KVM()
		if !ok {
			row(t, h.IP, h.RecordSource, failedToMap, failedToMap, failedToMap, failedToMap, "")
			continue
		}
		row(t, h.IP, h.RecordSource,
			kvm.Nova.Label(), kvm.Glance.Label(), kvm.Cinder.Label(), kvm.Designate.Label(),
			kvm.BondConfig)
	}
	_ = t.Flush()
}

func (p *Printer) kubernetesHosts(hosts []models.Host) {
	t := p.table("IP", "Source", "Node Type", "Cluster Name")
	for _, h := range hosts {
		k8s, ok := h.Kubernetes()
		if !ok {
			row(t, h.IP, h.RecordSource, failedToMap, unassigned)
			continue
		}
		cluster := k8s.ClusterName
		if cluster == "" {
			cluster = unassigned
		}
		row(t, h.IP, h.RecordSource, string(k8s.NodeType), cluster)
	}
	_ = t.Flush()
}

// Notice prints a highlighted one-line message.
func (p *Printer) Notice(format string, args ...any) {
	fmt.Fprintln(p.out, color.YellowString(format, args...))
}

func (p *Printer) table(headers ...string) *tabwriter.Writer {
	t := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	row(t, headers...)
	return t
}

func row(t *tabwriter.Writer, cells ...string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(t, "\t")
		}
		fmt.Fprint(t, c)
	}
	fmt.Fprintln(t)
}

func authLabel(s models.AuthStatus) string {
	if s == models.AuthStatusOK {
		return color.GreenString(string(s))
	}
	return color.RedString(string(s))
}
