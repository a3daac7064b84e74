// Package services implements the business logic layer for region-wizard.
//
// InventoryService sits between the CLI/HTTP front ends and two
// collaborators: the record store and the region control plane.
//
// # Service Dependency Graph
//
//	CLI commands, HTTP handlers
//	    │
//	    ▼
//	InventoryService ──► store.Store          (du.conf, hosts.conf)
//	                 └─► ControlPlane         (keystone, qbert, credsmanager, resmgr)
//
// # Sessions
//
// Every operation authenticates again. No token is kept between calls, so
// there is no expiry to track and no shared state to guard.
//
// # RegisterRegion
//
//	append to du.conf ──► authenticate ──► detect type ──► count hosts
//
// The region is written as typed and before it is contacted. Fields failing
// validation are only logged, and a region that cannot be reached is still
// registered and shows up as "Auth Failed" in the status.
//
// # RegisterHost
//
//	find region ──► authenticate ──► detect type ──► collect ip + placement ──► validate ──► append
//	     │               │                │
//	     ▼               ▼                ▼
//	 NotFound      AuthFailed     Unsupported (VMware)
//
// Any failure before the append leaves hosts.conf untouched. The placement
// collected depends on the detected type:
//
//	┌────────────┬──────────────────────────────────────────────────┐
//	│ Type       │ Collected                                        │
//	├────────────┼──────────────────────────────────────────────────┤
//	│ KVM        │ bond config, nova, glance, cinder, designate     │
//	│ Kubernetes │ node type (master|worker), cluster name          │
//	│ VMware     │ nothing, the flow is abandoned                   │
//	└────────────┴──────────────────────────────────────────────────┘
//
// # HostReport
//
// A region without hosts is reported without logging in to it.
//
// # StatusSnapshot
//
// Regions are processed one after the other. An authentication failure
// produces a row with Auth=Failed and no type or host count, and never stops
// the remaining regions.
//
// Usage:
//
//	svc := services.NewInventoryService(st, controlplane.NewClient())
//	status, err := svc.RegisterRegion(ctx, region)
//	host, err := svc.RegisterHost(ctx, region, prompter)
//	rows := svc.StatusSnapshot(ctx, regions)
package services
