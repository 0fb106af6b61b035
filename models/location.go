package models

import (
	"fmt"
	"os"
	"path/filepath"

	"emperror.dev/errors"
)

// Database names for datasets deposited in official archives.
const (
	DatabaseEMDB    = "EMDB"
	DatabasePDB     = "PDB"
	DatabaseMassIVE = "MASSIVE"
	DatabaseEMPIAR  = "EMPIAR"
	DatabaseSASBDB  = "SASBDB"
)

// Content type tags describing the role an externally stored file plays.
const (
	ContentInput         = "Input data or restraints"
	ContentOutput        = "Modeling or post-processing output"
	ContentWorkflow      = "Modeling workflow or script"
	ContentVisualization = "Visualization script"
)

// FileSizeUnknown is stored as the size of files that live inside a
// repository, where the local filesystem cannot be asked.
const FileSizeUnknown int64 = -1

// NotFoundError is returned when a purely-local file location names a path
// that does not exist on disk.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

const (
	kindDatabase = "database"
	kindFile     = "file"
)

// LocationKey identifies a location for equality checks and map use.
// Keys discriminate on the location kind first, so locations of different
// kinds never compare equal no matter how similar their fields look.
// The free-text details of a location never contribute to its key.
type LocationKey struct {
	kind        string
	dbName      string
	accessCode  string
	version     string
	repo        RepositoryKey
	inRepo      bool
	path        string
	contentType string
	ident       *int
}

// Location identifies the place an external resource can be found: an
// official database, an archived repository or the local disk.
type Location interface {
	// Key returns the comparable identity of the location. Two locations
	// refer to the same resource iff their keys compare equal.
	Key() LocationKey
}

// SameLocation reports whether two locations refer to the same external
// resource.
func SameLocation(a, b Location) bool {
	return a.Key() == b.Key()
}

// DatabaseLocation points at a dataset deposited in an official database
// (PDB, EMDB, MassIVE, EMPIAR, SASBDB, ...).
type DatabaseLocation struct {
	DBName     string `json:"db_name"`
	AccessCode string `json:"access_code"`
	Version    string `json:"version,omitempty"`
	Details    string `json:"details,omitempty"`

	allowDuplicates bool
	ident           *int
}

// NewDatabaseLocation describes a dataset in a database not covered by one
// of the named constructors.
func NewDatabaseLocation(dbName, accessCode, version, details string) *DatabaseLocation {
	return &DatabaseLocation{DBName: dbName, AccessCode: accessCode, Version: version, Details: details}
}

// NewEMDBLocation describes a dataset deposited in EMDB.
func NewEMDBLocation(accessCode, version, details string) *DatabaseLocation {
	return NewDatabaseLocation(DatabaseEMDB, accessCode, version, details)
}

// NewPDBLocation describes a dataset deposited in the PDB.
func NewPDBLocation(accessCode, version, details string) *DatabaseLocation {
	return NewDatabaseLocation(DatabasePDB, accessCode, version, details)
}

// NewMassIVELocation describes a dataset deposited in MassIVE.
func NewMassIVELocation(accessCode, version, details string) *DatabaseLocation {
	return NewDatabaseLocation(DatabaseMassIVE, accessCode, version, details)
}

// NewEMPIARLocation describes a dataset deposited in EMPIAR.
func NewEMPIARLocation(accessCode, version, details string) *DatabaseLocation {
	return NewDatabaseLocation(DatabaseEMPIAR, accessCode, version, details)
}

// NewSASBDBLocation describes a dataset deposited in SASBDB.
func NewSASBDBLocation(accessCode, version, details string) *DatabaseLocation {
	return NewDatabaseLocation(DatabaseSASBDB, accessCode, version, details)
}

func (l *DatabaseLocation) Key() LocationKey {
	if l.allowDuplicates {
		return LocationKey{kind: kindDatabase, ident: l.ident}
	}
	return LocationKey{
		kind:       kindDatabase,
		dbName:     l.DBName,
		accessCode: l.AccessCode,
		version:    l.Version,
	}
}

// FileLocation points at an individual file or directory stored externally,
// either inside an archived repository (Repo set, Path relative to the
// repository root) or on the local disk only (Repo nil, Path absolute).
type FileLocation struct {
	Path        string      `json:"path"`
	Repo        *Repository `json:"repo,omitempty"`
	ContentType string      `json:"content_type,omitempty"`
	// FileSize is the size in bytes for local files and FileSizeUnknown for
	// files inside a repository.
	FileSize int64  `json:"file_size"`
	Details  string `json:"details,omitempty"`

	// allowDuplicates switches the location to identity-based keys, so that
	// structurally identical values stay distinct. No current constructor
	// sets it.
	allowDuplicates bool
	ident           *int
}

// NewFileLocation describes a file or directory with no particular content
// type. When repo is nil the path must exist locally; its absolute form and
// byte size are captured immediately. When repo is given the path is stored
// verbatim, relative to the repository root, and the filesystem is not
// touched.
func NewFileLocation(path string, repo *Repository, details string) (*FileLocation, error) {
	return newFileLocation(path, repo, "", details)
}

// NewInputFileLocation describes an externally stored file used as input.
func NewInputFileLocation(path string, repo *Repository, details string) (*FileLocation, error) {
	return newFileLocation(path, repo, ContentInput, details)
}

// NewOutputFileLocation describes an externally stored file used for output.
func NewOutputFileLocation(path string, repo *Repository, details string) (*FileLocation, error) {
	return newFileLocation(path, repo, ContentOutput, details)
}

// NewWorkflowFileLocation describes an externally stored file that controls
// the workflow, such as a modeling script.
func NewWorkflowFileLocation(path string, repo *Repository, details string) (*FileLocation, error) {
	return newFileLocation(path, repo, ContentWorkflow, details)
}

// NewVisualizationFileLocation describes an externally stored file used for
// visualization.
func NewVisualizationFileLocation(path string, repo *Repository, details string) (*FileLocation, error) {
	return newFileLocation(path, repo, ContentVisualization, details)
}

func newFileLocation(path string, repo *Repository, contentType, details string) (*FileLocation, error) {
	loc := &FileLocation{
		Path:        path,
		Repo:        repo,
		ContentType: contentType,
		FileSize:    FileSizeUnknown,
		Details:     details,
	}
	if repo != nil {
		return loc, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, errors.Wrapf(err, "cannot stat %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve absolute path of %s", path)
	}
	// store the absolute path in case the working directory changes later
	loc.Path = abs
	loc.FileSize = info.Size()
	return loc, nil
}

func (l *FileLocation) Key() LocationKey {
	if l.allowDuplicates {
		return LocationKey{kind: kindFile, ident: l.ident}
	}
	k := LocationKey{
		kind:        kindFile,
		path:        l.Path,
		contentType: l.ContentType,
	}
	if l.Repo != nil {
		k.repo = l.Repo.Key()
		k.inRepo = true
	}
	return k
}
