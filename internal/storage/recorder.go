package storage

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-d20/internal/dice"
)

// Recorder persists the rolls of one session. Failures are logged and
// otherwise ignored so the screen keeps working without history.
type Recorder struct {
	store   *Store
	session string
	logger  *log.Logger
}

// NewRecorder creates a recorder with a fresh session id.
// A nil logger discards output.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:   store,
		session: uuid.NewString(),
		logger:  logger,
	}
}

// Session returns the session id attached to every saved roll.
func (r *Recorder) Session() string {
	return r.session
}

// Record saves v.
func (r *Recorder) Record(v int) {
	if r == nil || r.store == nil {
		return
	}
	if _, err := r.store.SaveRoll(r.session, v); err != nil {
		r.logger.Warn("Could not save roll", "session", r.session, "value", v, "error", err)
		return
	}
	r.logger.Debug("Roll saved", "session", r.session, "value", v)
}

// Attach records every roll of s until the returned cancel is called.
func (r *Recorder) Attach(s *dice.State) (cancel func()) {
	return s.Subscribe(r.Record)
}
