package quantum

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs the logger used for measurement tracing and drift warnings.
// Call it during start-up, before any measurement runs.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "quantum").Logger()
}
