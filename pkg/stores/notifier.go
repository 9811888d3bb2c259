package stores

import "github.com/rs/zerolog"

// Notifier receives the ephemeral user-facing messages the stores raise
// after operations. The presentation layer plugs its own implementation in;
// the default writes them to the log.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NewLogNotifier returns a Notifier that writes all messages to l.
func NewLogNotifier(l zerolog.Logger) Notifier {
	return logNotifier{log: l}
}

type logNotifier struct {
	log zerolog.Logger
}

func (n logNotifier) Success(message string) {
	n.log.Info().Msg(message)
}

func (n logNotifier) Error(message string) {
	n.log.Error().Msg(message)
}
