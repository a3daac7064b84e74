package store

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pf9/region-wizard/internal/models"
)

const (
	RegionsFile = "du.conf"
	HostsFile   = "hosts.conf"
)

// Store provides access to all record collections kept under one directory.
type Store struct {
	dir     string
	regions *RegionStore
	hosts   *HostStore
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{
		dir:     dir,
		regions: newRegionStore(newJSONFile[models.Region](fs, dir, filepath.Join(dir, RegionsFile))),
		hosts:   newHostStore(newJSONFile[models.Host](fs, dir, filepath.Join(dir, HostsFile))),
	}
}

func (s *Store) Regions() *RegionStore {
	return s.regions
}

func (s *Store) Hosts() *HostStore {
	return s.hosts
}

func (s *Store) Dir() string {
	return s.dir
}
