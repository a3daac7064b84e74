package cli

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/pf9/region-wizard/internal/config"
	"github.com/pf9/region-wizard/internal/display"
	"github.com/pf9/region-wizard/internal/models"
	"github.com/pf9/region-wizard/internal/prompt"
	"github.com/pf9/region-wizard/internal/services"
	"github.com/pf9/region-wizard/internal/store"
	"github.com/pf9/region-wizard/pkg/controlplane"
	srvErrors "github.com/pf9/region-wizard/pkg/errors"
)

// app holds what every command needs once the configuration is known.
type app struct {
	fs        afero.Fs
	cfg       *config.Configuration
	store     *store.Store
	inventory *services.InventoryService
	prompter  *prompt.Prompter
	printer   *display.Printer
	out       io.Writer
}

func (a *app) init(cfg *config.Configuration, in io.Reader, out io.Writer) {
	a.cfg = cfg
	a.out = out
	a.store = store.NewStore(a.fs, cfg.ConfigDir)
	a.inventory = services.NewInventoryService(a.store, controlplane.NewClient(
		controlplane.WithTimeout(cfg.ControlPlane.Timeout),
		controlplane.WithKVMProbeTimeout(cfg.ControlPlane.KVMProbeTimeout),
	))
	a.prompter = prompt.New(in, out)
	a.printer = display.New(out)
}

func (a *app) addRegion(ctx context.Context) error {
	r, err := a.prompter.Region()
	if err != nil {
		return err
	}

	status, err := a.inventory.RegisterRegion(ctx, r)
	if err != nil {
		return a.report(err)
	}
	a.printer.Regions([]models.RegionStatus{*status})
	return nil
}

func (a *app) addHost(ctx context.Context) error {
	region, err := a.selectRegion()
	if err != nil || region == nil {
		return err
	}

	host, err := a.inventory.RegisterHost(ctx, *region, a.prompter)
	if err != nil {
		return a.report(err)
	}
	a.printer.Notice("host %s added to %s", host.IP, region.URL)
	return nil
}

func (a *app) showRegions(ctx context.Context) error {
	regions, err := a.inventory.Regions()
	if err != nil {
		return err
	}
	a.printer.Regions(a.inventory.StatusSnapshot(ctx, regions))
	return nil
}

func (a *app) showHosts(ctx context.Context) error {
	region, err := a.selectRegion()
	if err != nil || region == nil {
		return err
	}

	report, err := a.inventory.HostReport(ctx, *region)
	if err != nil {
		return a.report(err)
	}
	a.printer.Hosts(report)
	return nil
}

func (a *app) attachHosts(context.Context) error {
	a.printer.Notice("Attach Hosts is not implemented yet")
	return nil
}

// selectRegion returns nil, without error, when no region is registered.
func (a *app) selectRegion() (*models.Region, error) {
	regions, err := a.inventory.Regions()
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(regions))
	for _, r := range regions {
		urls = append(urls, r.URL)
	}

	idx, err := a.prompter.Select("Select Region", urls)
	if errors.Is(err, prompt.ErrNoChoices) {
		a.printer.RegionList(nil)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &regions[idx], nil
}

// report prints the errors a user can act upon and returns the others.
func (a *app) report(err error) error {
	switch {
	case srvErrors.IsAuthenticationFailedError(err),
		srvErrors.IsUnsupportedRegionError(err),
		srvErrors.IsValidationError(err),
		srvErrors.IsResourceNotFoundError(err):
		color.New(color.FgRed).Fprintf(a.out, "ERROR: %v\n", err)
		return nil
	default:
		return err
	}
}
