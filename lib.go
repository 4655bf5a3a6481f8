package targetver

import (
	"github.com/anchore/go-logger"

	"github.com/anchore/go-targetver/internal/log"
)

// SetLogger sets the logger used for diagnostics within the library. The
// default logger discards all output.
func SetLogger(l logger.Logger) {
	log.Set(l)
}

// ParseAll constructs versions through the process-wide default cache,
// aggregating any malformed-input failures.
func ParseAll(values ...string) ([]*Version, error) {
	return defaultCache.ParseAll(values...)
}
