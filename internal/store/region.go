package store

import (
	"github.com/pf9/region-wizard/internal/models"
	srvErrors "github.com/pf9/region-wizard/pkg/errors"
)

// RegionStore handles region records.
type RegionStore struct {
	file *jsonFile[models.Region]
}

func newRegionStore(file *jsonFile[models.Region]) *RegionStore {
	return &RegionStore{file: file}
}

// List returns every region in insertion order. It returns an empty slice
// when nothing has been stored yet.
func (s *RegionStore) List() ([]models.Region, error) {
	return s.file.read()
}

// Append adds the region at the end of the collection. Duplicates are kept.
func (s *RegionStore) Append(r models.Region) error {
	return s.file.append(r)
}

// Find returns the first region registered with url.
func (s *RegionStore) Find(url string) (*models.Region, error) {
	regions, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, r := range regions {
		if r.URL == url {
			return &r, nil
		}
	}
	return nil, srvErrors.NewRegionNotFoundError(url)
}
