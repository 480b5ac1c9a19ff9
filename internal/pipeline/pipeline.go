// Package pipeline wires the capture source, normalizer, filter, and
// event consumers together.
//
// Processing is synchronous and single-threaded: one raw report is
// fully normalized, filtered, and fanned out to every sink before the
// next is accepted. This keeps the normalizer's sequence state trivially
// correct without locking.
package pipeline

import (
	"errors"
	"io"

	"github.com/keyscope/keyscope/internal/capture"
	"github.com/keyscope/keyscope/internal/filter"
	"github.com/keyscope/keyscope/internal/metrics"
	"github.com/keyscope/keyscope/internal/rawkey"
)

// Sink consumes normalized events.
type Sink interface {
	Consume(ev rawkey.Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev rawkey.Event)

// Consume implements Sink.
func (f SinkFunc) Consume(ev rawkey.Event) {
	f(ev)
}

// Pipeline drives raw reports through normalization to the sinks.
type Pipeline struct {
	normalizer *rawkey.Normalizer
	filter     *filter.Filter
	metrics    *metrics.Metrics
	sinks      []Sink

	// adjust toggles the normalization pass. When off, reports are
	// forwarded as bare events so the raw stream can be inspected.
	adjust bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFilter installs a Lua event filter.
func WithFilter(f *filter.Filter) Option {
	return func(p *Pipeline) {
		p.filter = f
	}
}

// WithMetrics installs a metrics tracker.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithSinks appends event consumers.
func WithSinks(sinks ...Sink) Option {
	return func(p *Pipeline) {
		p.sinks = append(p.sinks, sinks...)
	}
}

// New creates a pipeline around the given normalizer with the
// adjustment pass enabled.
func New(n *rawkey.Normalizer, opts ...Option) *Pipeline {
	p := &Pipeline{
		normalizer: n,
		metrics:    metrics.New(),
		adjust:     true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetAdjust toggles the normalization pass.
func (p *Pipeline) SetAdjust(on bool) {
	p.adjust = on
}

// Adjust reports whether the normalization pass is enabled.
func (p *Pipeline) Adjust() bool {
	return p.adjust
}

// Metrics returns the pipeline's metrics tracker.
func (p *Pipeline) Metrics() *metrics.Metrics {
	return p.metrics
}

// Clear resets the normalizer's pending sequence state.
func (p *Pipeline) Clear() {
	p.normalizer.Reset()
}

// Process runs one raw report through the pipeline. It returns the
// event handed to the sinks and true, or false when the report was
// discarded or filtered out.
func (p *Pipeline) Process(raw rawkey.RawEvent) (rawkey.Event, bool) {
	p.metrics.RecordRaw()

	var ev rawkey.Event
	if p.adjust {
		var ok bool
		ev, ok = p.normalizer.Normalize(raw)
		if !ok {
			p.metrics.RecordDiscarded()
			return rawkey.Event{}, false
		}
	} else {
		ev = rawkey.NewEvent(raw)
	}

	if !p.filter.Allow(ev) {
		p.metrics.RecordFiltered()
		return rawkey.Event{}, false
	}

	p.metrics.RecordEmitted(ev.Adjustments.Has(rawkey.AdjMakeCodeMapped) ||
		ev.Adjustments.Has(rawkey.AdjVirtualKeyAdjusted))

	for _, sink := range p.sinks {
		sink.Consume(ev)
	}
	return ev, true
}

// Drain pulls reports from the source until it is exhausted, processing
// each in turn. A source error other than io.EOF is returned as is.
func (p *Pipeline) Drain(src capture.Source) error {
	for {
		raw, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		p.Process(raw)
	}
}
