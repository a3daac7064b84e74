package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pf9/region-wizard/internal/models"
)

const (
	RegionsSheet = "Regions"
	HostsSheet   = "Hosts"
)

var (
	regionHeader = []any{"ID", "DU URL", "Username", "Tenant", "Region Name", "Proxy", "DNS", "Auth Type", "Auth Username", "Bond Interface", "Bond Mode", "Bond MTU"}
	hostHeader   = []any{"ID", "DU URL", "Region Type", "IP", "Source", "Bond Config", "Nova", "Glance", "Cinder", "Designate", "Node Type", "Cluster Name"}
)

// Write saves regions and hosts to a workbook at path. Passwords and SSH
// keys are left out.
func Write(path string, regions []models.Region, hosts []models.Host) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", RegionsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", RegionsSheet, err)
	}
	if _, err := f.NewSheet(HostsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", HostsSheet, err)
	}

	rows := [][]any{regionHeader}
	for _, r := range regions {
		rows = append(rows, regionRow(r))
	}
	if err := writeRows(f, RegionsSheet, rows); err != nil {
		return err
	}

	rows = [][]any{hostHeader}
	for _, h := range hosts {
		rows = append(rows, hostRow(h))
	}
	if err := writeRows(f, HostsSheet, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	zap.S().Named("export").Infow("inventory exported", "path", path, "regions", len(regions), "hosts", len(hosts))
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func regionRow(r models.Region) []any {
	return []any{r.ID, r.URL, r.Username, r.Tenant, r.Name, r.Proxy, r.DNSList, string(r.AuthType), r.AuthUsername, r.BondIfName, r.BondMode, r.BondMTU}
}

func hostRow(h models.Host) []any {
	row := []any{h.ID, h.RegionURL, "", h.IP, h.RecordSource, "", "", "", "", "", "", ""}
	switch p := h.Placement.(type) {
	case models.KVMPlacement:
		row[2] = string(p.RegionType())
		row[5], row[6], row[7], row[8], row[9] = p.BondConfig, p.Nova.Label(), p.Glance.Label(), p.Cinder.Label(), p.Designate.Label()
	case models.KubernetesPlacement:
		row[2] = string(p.RegionType())
		row[10], row[11] = string(p.NodeType), p.ClusterName
	}
	return row
}
