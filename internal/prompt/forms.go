package prompt

import (
	"context"

	"github.com/pf9/region-wizard/internal/models"
)

var yesNo = []string{string(models.ToggleYes), string(models.ToggleNo)}

type question struct {
	dst    *string
	label  string
	def    string
	secret bool
}

func (p *Prompter) askAll(questions []question) error {
	for _, q := range questions {
		var (
			answer string
			err    error
		)
		if q.secret {
			answer, err = p.AskSecret(q.label)
		} else {
			answer, err = p.Ask(q.label, nil, q.def)
		}
		if err != nil {
			return err
		}
		*q.dst = answer
	}
	return nil
}

// Region asks for every field of a new region.
func (p *Prompter) Region() (models.Region, error) {
	var r models.Region

	err := p.askAll([]question{
		{dst: &r.URL, label: "--> DU URL"},
		{dst: &r.Username, label: "--> DU Username", def: "admin@platform9.net"},
		{dst: &r.Password, label: "--> DU Password", secret: true},
		{dst: &r.Tenant, label: "--> DU Tenant", def: "service"},
		{dst: &r.Name, label: "--> Region Name"},
		{dst: &r.Proxy, label: "--> Proxy"},
		{dst: &r.DNSList, label: "--> DNS Server (comma-delimited list or IPs)"},
	})
	if err != nil {
		return models.Region{}, err
	}

	authType, err := p.Ask("--> Authentication Type ['simple','ssh-key']",
		[]string{string(models.AuthTypeSimple), string(models.AuthTypeSSHKey)}, string(models.AuthTypeSimple))
	if err != nil {
		return models.Region{}, err
	}
	if r.AuthType, err = models.ParseAuthType(authType); err != nil {
		return models.Region{}, err
	}

	access := []question{{dst: &r.AuthUsername, label: "--> Username for Remote Access"}}
	if r.AuthType == models.AuthTypeSimple {
		access = append(access, question{dst: &r.AuthPassword, label: "--> Password for Remote Access", secret: true})
	} else {
		access = append(access, question{dst: &r.AuthSSHKey, label: "--> SSH Key for Remote Access"})
	}
	access = append(access,
		question{dst: &r.BondIfName, label: "--> Interface Name (for OVS Bond)", def: "bond0"},
		question{dst: &r.BondMode, label: "--> Bond Mode", def: "1"},
		question{dst: &r.BondMTU, label: "--> MTU for Bond Interface", def: "9000"},
	)
	if err := p.askAll(access); err != nil {
		return models.Region{}, err
	}

	return r, nil
}

func (p *Prompter) CollectIP(ctx context.Context) (string, error) {
	return p.Ask("--> IP Address", nil, "")
}

func (p *Prompter) CollectKVM(ctx context.Context) (models.KVMPlacement, error) {
	var (
		kvm    models.KVMPlacement
		answer string
		err    error
	)

	if kvm.BondConfig, err = p.Ask("--> Bond Config", nil, ""); err != nil {
		return kvm, err
	}

	toggles := []struct {
		label string
		def   models.Toggle
		dst   *models.Toggle
	}{
		{"--> Enable Nova", models.ToggleYes, &kvm.Nova},
		{"--> Enable Glance", models.ToggleNo, &kvm.Glance},
		{"--> Enable Cinder", models.ToggleNo, &kvm.Cinder},
		{"--> Enable Designate", models.ToggleNo, &kvm.Designate},
	}
	for _, t := range toggles {
		if answer, err = p.Ask(t.label, yesNo, string(t.def)); err != nil {
			return kvm, err
		}
		*t.dst = models.Toggle(answer)
	}
	return kvm, nil
}

func (p *Prompter) CollectKubernetes(ctx context.Context) (models.KubernetesPlacement, error) {
	var k8s models.KubernetesPlacement

	nodeType, err := p.Ask("--> Node Type [master, worker]",
		[]string{string(models.NodeTypeMaster), string(models.NodeTypeWorker)}, "")
	if err != nil {
		return k8s, err
	}
	k8s.NodeType = models.NodeType(nodeType)

	if k8s.ClusterName, err = p.Ask("--> Cluster to Attach To", nil, ""); err != nil {
		return k8s, err
	}
	return k8s, nil
}
