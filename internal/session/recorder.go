package session

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/keyscope/keyscope/internal/rawkey"
)

// Recorder writes normalized events as JSON lines. Records carry the
// raw fields a ReplaySource needs, plus the session id and the packed
// value so a recording round-trips exactly.
type Recorder struct {
	w       io.Writer
	session string
	err     error
}

// NewRecorder creates a recorder writing to w under a fresh session id.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		w:       w,
		session: uuid.NewString(),
	}
}

// SessionID returns the recorder's session id.
func (r *Recorder) SessionID() string {
	return r.session
}

// Record writes one event. After the first write failure the recorder
// goes inert and Err reports the failure.
func (r *Recorder) Record(ev rawkey.Event) {
	if r.err != nil {
		return
	}

	line := ""
	line, _ = sjson.Set(line, "session", r.session)
	line, _ = sjson.Set(line, "make", ev.MakeCode)
	line, _ = sjson.Set(line, "vk", ev.VirtualKey)
	line, _ = sjson.Set(line, "flags", uint16(ev.Flags))
	line, _ = sjson.Set(line, "packed", uint32(rawkey.Pack(ev)))

	if _, err := fmt.Fprintln(r.w, line); err != nil {
		r.err = fmt.Errorf("writing record: %w", err)
	}
}

// Err returns the first write failure, if any.
func (r *Recorder) Err() error {
	return r.err
}

// Consume implements the pipeline sink.
func (r *Recorder) Consume(ev rawkey.Event) {
	r.Record(ev)
}
