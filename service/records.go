package service

import (
	"github.com/google/uuid"

	"extref/models"
)

// Record type tags.
const (
	RecordDatabase   = "database"
	RecordFile       = "file"
	RecordRepository = "repository"
)

// Record is the flattened, serializer-facing view of a location or a
// repository. A downstream writer (e.g. an mmCIF dumper) consumes these;
// this module only builds and prints them.
type Record struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	DBName            string `json:"db_name,omitempty"`
	AccessCode        string `json:"access_code,omitempty"`
	Version           string `json:"version,omitempty"`
	Path              string `json:"path,omitempty"`
	ContentType       string `json:"content_type,omitempty"`
	FileSize          int64  `json:"file_size,omitempty"`
	RepositoryID      string `json:"repository_id,omitempty"`
	Reference         string `json:"reference,omitempty"`
	ReferenceType     string `json:"reference_type,omitempty"`
	ReferenceProvider string `json:"reference_provider,omitempty"`
	RefersTo          string `json:"refers_to,omitempty"`
	Details           string `json:"details,omitempty"`
}

// BuildRecords flattens locations into serializer-ready records. Locations
// are deduplicated by key, one record is emitted per distinct repository
// referenced, and file records point at their repository record by id.
// Repository records come first, in order of first reference.
func BuildRecords(locations []models.Location) []Record {
	seen := map[models.LocationKey]bool{}
	repoIDs := map[models.RepositoryKey]string{}
	repoRecords := []Record{}
	locationRecords := []Record{}
	for _, loc := range locations {
		if seen[loc.Key()] {
			continue
		}
		seen[loc.Key()] = true
		switch l := loc.(type) {
		case *models.DatabaseLocation:
			locationRecords = append(locationRecords, Record{
				ID:         uuid.NewString(),
				Type:       RecordDatabase,
				DBName:     l.DBName,
				AccessCode: l.AccessCode,
				Version:    l.Version,
				Details:    l.Details,
			})
		case *models.FileLocation:
			record := Record{
				ID:          uuid.NewString(),
				Type:        RecordFile,
				Path:        l.Path,
				ContentType: l.ContentType,
				FileSize:    l.FileSize,
				Details:     l.Details,
			}
			if l.Repo != nil {
				id, ok := repoIDs[l.Repo.Key()]
				if !ok {
					id = uuid.NewString()
					repoIDs[l.Repo.Key()] = id
					repoRecords = append(repoRecords, repositoryRecord(id, l.Repo))
				}
				record.RepositoryID = id
				record.Path = l.Repo.FullPath(l.Path)
			}
			locationRecords = append(locationRecords, record)
		}
	}
	return append(repoRecords, locationRecords...)
}

func repositoryRecord(id string, repo *models.Repository) Record {
	return Record{
		ID:                id,
		Type:              RecordRepository,
		Reference:         repo.Reference(),
		ReferenceType:     models.ReferenceType,
		ReferenceProvider: repo.ReferenceProvider(),
		RefersTo:          repo.RefersTo(),
	}
}
