package logger

import (
	"sync"

	"github.com/arloliu/persuade/types"
)

// Entry is one message captured by a Recorder.
type Entry struct {
	Level         string
	Msg           string
	KeysAndValues []any
}

// Recorder keeps every logged message in memory so tests can assert on them.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ types.Logger = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, msg string, keysAndValues []any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{Level: level, Msg: msg, KeysAndValues: keysAndValues})
}

func (r *Recorder) Debug(msg string, keysAndValues ...any) { r.record("debug", msg, keysAndValues) }
func (r *Recorder) Info(msg string, keysAndValues ...any)  { r.record("info", msg, keysAndValues) }
func (r *Recorder) Warn(msg string, keysAndValues ...any)  { r.record("warn", msg, keysAndValues) }
func (r *Recorder) Error(msg string, keysAndValues ...any) { r.record("error", msg, keysAndValues) }

// Fatal records the message at fatal level and does not exit.
func (r *Recorder) Fatal(msg string, keysAndValues ...any) { r.record("fatal", msg, keysAndValues) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Messages returns the recorded messages at the given level, in order.
func (r *Recorder) Messages(level string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}

	return out
}
