// Package progrock records deploy steps as progrock vertices.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock tape. The tape
// always receives every update; Reports reads it back.
type Recorder struct {
	tape    *progrock.Tape
	w       progrock.Writer
	rec     *progrock.Recorder
	session string

	mu  sync.Mutex
	seq int
}

// New creates a new Recorder for the todostack session.
func New() ports.Telemetry {
	return NewRecorder("todostack")
}

// NewRecorder creates a new Recorder. Vertex digests are scoped to session.
// Status updates are also forwarded to sinks.
func NewRecorder(session string, sinks ...progrock.Writer) *Recorder {
	tape := progrock.NewTape()

	var w progrock.Writer = tape
	if len(sinks) > 0 {
		w = append(progrock.MultiWriter{tape}, sinks...)
	}

	return &Recorder{
		tape:    tape,
		w:       w,
		rec:     progrock.NewRecorder(w),
		session: session,
	}
}

// Record starts a vertex for the named step and stores it in the returned context.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(r.digest(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Reports converts the vertices on the tape into step reports.
func (r *Recorder) Reports() []domain.StepReport {
	vertices := r.tape.Vertices()
	reports := make([]domain.StepReport, 0, len(vertices))
	for _, v := range vertices {
		if v.Internal {
			continue
		}
		reports = append(reports, report(v))
	}
	return reports
}

func report(v *progrock.Vertex) domain.StepReport {
	rep := domain.StepReport{
		Name:     v.Name,
		State:    domain.StepDone,
		Duration: v.Duration(),
	}

	switch {
	case v.Error != nil:
		rep.State = domain.StepFailed
		rep.Error = *v.Error
	case v.Canceled:
		rep.State = domain.StepFailed
		rep.Error = "canceled"
	case v.Cached:
		rep.State = domain.StepCached
	case v.Completed == nil:
		rep.State = domain.StepRunning
	}
	return rep
}

// digest is unique per call so a step recorded twice gets two vertices.
func (r *Recorder) digest(name string) digest.Digest {
	r.mu.Lock()
	r.seq++
	n := r.seq
	r.mu.Unlock()

	return digest.FromString(r.session + "/" + strconv.Itoa(n) + "/" + name)
}

// Close closes the tape and any sinks.
func (r *Recorder) Close() error {
	return r.w.Close()
}
