package models

import (
	"path/filepath"
	"strings"

	"emperror.dev/errors"
)

// ReferenceType is the kind of permanent reference every Repository carries.
const ReferenceType = "DOI"

// RefersTo classifications for a repository's download URL.
const (
	RefersToArchive = "Archive"
	RefersToFile    = "File"
	RefersToOther   = "Other"
)

// Repository describes an archived collection of modeling files, referenced
// permanently by a DOI. It is used to build permanent references to files
// used in a modeling study even when they have not been deposited in a
// database such as PDB or EMDB.
type Repository struct {
	DOI          string `json:"doi"`
	URL          string `json:"url,omitempty"`
	TopDirectory string `json:"top_directory,omitempty"`

	// root is the local checkout of the repository, stored absolute. It has
	// no archival meaning and stays out of the equality key.
	root string
}

// NewRepository describes an archived repository. root is the local checkout
// directory, empty when the repository is not checked out; url, if given, is
// a location the archive can be downloaded from; topDirectory, if given,
// prefixes all file paths inside the archive (GitHub repositories archived
// at Zenodo land in a subdirectory named for the repository and git hash).
func NewRepository(doi, root, url, topDirectory string) (*Repository, error) {
	repo := &Repository{DOI: doi, URL: url, TopDirectory: topDirectory}
	if root != "" {
		// store the absolute path in case the working directory changes later
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot resolve repository root %s", root)
		}
		repo.root = abs
	}
	return repo, nil
}

// RepositoryKey identifies a repository for equality checks and map use.
// Repositories with the same DOI and URL are the same archive, regardless
// of where or whether they are checked out locally.
type RepositoryKey struct {
	DOI string
	URL string
}

func (r *Repository) Key() RepositoryKey {
	return RepositoryKey{DOI: r.DOI, URL: r.URL}
}

// Root returns the local checkout directory, empty when the repository is
// not checked out.
func (r *Repository) Root() string {
	return r.root
}

// Reference returns the permanent reference of the repository.
func (r *Repository) Reference() string {
	return r.DOI
}

// ReferenceProvider names the archiving service behind the reference, empty
// when it cannot be derived.
func (r *Repository) ReferenceProvider() string {
	if strings.Contains(r.Reference(), "zenodo") {
		return "Zenodo"
	}
	return ""
}

// RefersTo classifies what the download URL points at.
func (r *Repository) RefersTo() string {
	if r.URL == "" {
		return RefersToOther
	}
	if strings.HasSuffix(r.URL, ".zip") {
		return RefersToArchive
	}
	return RefersToFile
}

// FullPath prefixes the given archive-relative path with the repository's
// top-level directory. Pure path composition, no I/O.
func (r *Repository) FullPath(path string) string {
	return filepath.Join(r.TopDirectory, path)
}

// ResolveInRepositories expresses a local file location as a path inside the
// best matching repository of the given catalog. A repository matches when
// the location's absolute path, taken relative to the repository root, does
// not escape the root; among several matches the shortest relative path
// wins, first seen winning ties. The returned location is a resolved copy
// together with a flag telling whether it is bound to a repository; the
// input is never modified. Already-bound locations pass through unchanged,
// as do locations no repository contains. Repositories without a local
// checkout never match.
func ResolveInRepositories(loc *FileLocation, repos []*Repository) (*FileLocation, bool) {
	if loc.Repo != nil {
		return loc, true
	}
	resolved := *loc
	bound := false
	for _, repo := range repos {
		if repo.root == "" {
			continue
		}
		rel, err := filepath.Rel(repo.root, loc.Path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		if !bound || len(rel) < len(resolved.Path) {
			resolved.Repo = repo
			resolved.Path = rel
			bound = true
		}
	}
	if !bound {
		return loc, false
	}
	return &resolved, true
}
