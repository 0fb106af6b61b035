package service

import (
	"emperror.dev/errors"
	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"

	"extref/configuration"
)

// GetConfig loads the YAML configuration file, with environment overrides
// picked up from a .env file when one is present.
func GetConfig(path string) (*configuration.Config, error) {
	_ = godotenv.Load(".env")
	configObj := &configuration.Config{}
	if err := configor.New(&configor.Config{ENVPrefix: "EXTREF"}).Load(configObj, path); err != nil {
		return nil, errors.Wrapf(err, "cannot load configuration from %s", path)
	}
	return configObj, nil
}
