package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/je4/utils/v2/pkg/zLogger"
	"github.com/rs/zerolog"

	"extref/configuration"
)

// newLogger builds the zerolog logger each command hands around. The
// returned closer is nil when logging goes to stderr.
func newLogger(cfg configuration.Log) (zLogger.ZLogger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = f
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	hostname, _ := os.Hostname()
	l := zerolog.New(out).Level(level).With().Timestamp().Str("host", hostname).Logger()
	return &l, closer, nil
}
