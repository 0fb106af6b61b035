package configuration

// Config carries the runtime configuration: logger settings and the catalog
// of archived repositories that local files may resolve into.
type Config struct {
	Log          Log                `yaml:"log" toml:"Log"`
	Repositories []RepositoryConfig `yaml:"repositories" toml:"Repositories"`
}

type Log struct {
	Level string `yaml:"level" toml:"Level" default:"info"`
	File  string `yaml:"file" toml:"File"`
}

// RepositoryConfig describes one archived repository in the catalog. DOI is
// required; Root is the local checkout directory, URL an optional download
// location and TopDirectory an optional path prefix inside the archive.
type RepositoryConfig struct {
	DOI          string `yaml:"doi" toml:"DOI"`
	Root         string `yaml:"root" toml:"Root"`
	URL          string `yaml:"url" toml:"URL"`
	TopDirectory string `yaml:"top-directory" toml:"TopDirectory"`
}
