// Package store implements the record store for region-wizard.
//
// Regions and hosts are kept in two independent JSON-array files inside a
// single configuration directory. The directory and the filesystem are
// passed in at construction, so tests run against afero.NewMemMapFs() and
// nothing reads process-wide paths.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────────────────────┬────────────────────────────────┤
//	│          RegionStore           │           HostStore            │
//	│               ▼                │               ▼                │
//	│     jsonFile[models.Region]    │      jsonFile[models.Host]     │
//	│               ▼                │               ▼                │
//	│          <dir>/du.conf         │        <dir>/hosts.conf        │
//	└────────────────────────────────┴────────────────────────────────┘
//
// # Files
//
//	┌────────────┬──────────────────────────────────────────────────────┐
//	│  File      │  Content                                             │
//	├────────────┼──────────────────────────────────────────────────────┤
//	│  du.conf   │  JSON array of regions (url, credentials, bonding)   │
//	│  hosts.conf│  JSON array of hosts, flat KVM + Kubernetes fields   │
//	└────────────┴──────────────────────────────────────────────────────┘
//
// Both files are created on the first append, together with the directory.
// A missing file reads as an empty collection.
//
// # Write Pattern
//
// Every append reads the full array, adds one element and rewrites the file:
//
//	read(path) ──► append(item) ──► MkdirAll(dir) ──► WriteFile(path)
//
// The rewrite is not atomic and there is no file locking. A crash during
// WriteFile can leave a truncated file, and two processes appending at the
// same time can lose an update. The tool is meant for one operator running
// one process at a time.
//
// # Records
//
// There is no update or delete. Duplicate region urls are accepted and
// Find returns the first match. Hosts are not checked against regions here;
// services.InventoryService rejects hosts for unknown regions.
//
// Host filtering uses ListOption predicates:
//
//	hosts, err := st.Hosts().List(store.ByRegion("https://a.example"))
//
// # Errors
//
//   - srvErrors.PersistenceError: the directory or a file cannot be read or written
//   - srvErrors.ResourceNotFoundError: RegionStore.Find found no match
//   - decode errors: a file exists but is not a JSON array of records
package store
