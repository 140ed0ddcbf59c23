package sortedset

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger directs the package's diagnostic output to l. Output is discarded by default.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "sortedset").Logger()
}
