package store

import (
	"github.com/pf9/region-wizard/internal/models"
)

// HostStore handles host records. It does not check that a host's region
// exists.
type HostStore struct {
	file *jsonFile[models.Host]
}

func newHostStore(file *jsonFile[models.Host]) *HostStore {
	return &HostStore{file: file}
}

func (s *HostStore) List(opts ...ListOption) ([]models.Host, error) {
	hosts, err := s.file.read()
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return hosts, nil
	}

	filtered := make([]models.Host, 0, len(hosts))
	for _, h := range hosts {
		if matches(h, opts) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func (s *HostStore) Append(h models.Host) error {
	return s.file.append(h)
}

type ListOption func(models.Host) bool

func ByRegion(url string) ListOption {
	return func(h models.Host) bool {
		return h.RegionURL == url
	}
}

func ByRegionType(t models.RegionType) ListOption {
	return func(h models.Host) bool {
		return h.Placement != nil && h.Placement.RegionType() == t
	}
}

func matches(h models.Host, opts []ListOption) bool {
	for _, opt := range opts {
		if !opt(h) {
			return false
		}
	}
	return true
}
