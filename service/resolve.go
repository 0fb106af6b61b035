package service

import (
	"emperror.dev/errors"

	"extref/models"
)

// Content type names accepted on the command line.
const (
	ContentNameInput         = "input"
	ContentNameOutput        = "output"
	ContentNameWorkflow      = "workflow"
	ContentNameVisualization = "visualization"
)

type fileConstructor func(path string, repo *models.Repository, details string) (*models.FileLocation, error)

var fileConstructors = map[string]fileConstructor{
	ContentNameInput:         models.NewInputFileLocation,
	ContentNameOutput:        models.NewOutputFileLocation,
	ContentNameWorkflow:      models.NewWorkflowFileLocation,
	ContentNameVisualization: models.NewVisualizationFileLocation,
}

// ResolveFiles builds a location for every given local path and resolves
// each against the repository catalog. Paths must exist locally; the first
// missing one aborts the whole call.
func ResolveFiles(paths []string, contentName string, catalog []*models.Repository) ([]*models.FileLocation, error) {
	construct, ok := fileConstructors[contentName]
	if !ok {
		return nil, errors.Errorf("unknown content type %s", contentName)
	}
	locations := make([]*models.FileLocation, 0, len(paths))
	for _, path := range paths {
		loc, err := construct(path, nil, "")
		if err != nil {
			return nil, err
		}
		loc, _ = models.ResolveInRepositories(loc, catalog)
		locations = append(locations, loc)
	}
	return locations, nil
}
