package service

import (
	"emperror.dev/errors"

	"extref/configuration"
	"extref/models"
)

// BuildCatalog constructs the repository catalog from configuration. Every
// entry needs a DOI; everything else is optional.
func BuildCatalog(config *configuration.Config) ([]*models.Repository, error) {
	catalog := make([]*models.Repository, 0, len(config.Repositories))
	for i, entry := range config.Repositories {
		if entry.DOI == "" {
			return nil, errors.Errorf("repository entry %d has no doi", i)
		}
		repo, err := models.NewRepository(entry.DOI, entry.Root, entry.URL, entry.TopDirectory)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot build repository %s", entry.DOI)
		}
		catalog = append(catalog, repo)
	}
	return catalog, nil
}
