package sequencer

import (
	"sort"
	"sync"
	"time"

	"github.com/linkerage/midiseq/logger"
	"github.com/linkerage/midiseq/midi"
)

// Timeline expands a composition into its sorted playback timeline: one
// note-on and one note-off event per note, ordered by time. Simultaneous
// events order deterministically: note-on before note-off, then by track,
// then by pitch.
func Timeline(c *Composition) []midi.Event {
	beat := float64(c.BeatDuration())

	events := make([]midi.Event, 0, 2*c.NoteCount())
	for i, t := range c.Tracks {
		for _, n := range t.Notes {
			events = append(events, midi.Event{
				Type:     midi.NoteOn,
				Track:    i,
				Note:     n.Pitch,
				Velocity: n.Velocity,
				At:       time.Duration(n.Start * beat),
			}, midi.Event{
				Type:  midi.NoteOff,
				Track: i,
				Note:  n.Pitch,
				At:    time.Duration(n.End() * beat),
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.At != b.At {
			return a.At < b.At
		}
		if a.Type != b.Type {
			return a.Type == midi.NoteOn
		}
		if a.Track != b.Track {
			return a.Track < b.Track
		}
		return a.Note < b.Note
	})
	return events
}

// Player realizes composition snapshots as real-time event streams, one
// cancellable background run at a time.
type Player struct {
	sink midi.Sink
	log  *logger.Logger

	mu   sync.Mutex
	stop chan struct{} // non-nil while a run is active
}

func NewPlayer(sink midi.Sink, log *logger.Logger) *Player {
	return &Player{sink: sink, log: log}
}

// Play snapshots the composition, stops any run already in flight and
// starts a new one. It returns as soon as the run goroutine is scheduled;
// the returned channel closes when the run exits.
func (p *Player) Play(c *Composition) <-chan struct{} {
	events := Timeline(c.Clone())

	p.mu.Lock()
	if p.stop != nil {
		close(p.stop)
	}
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	done := make(chan struct{})
	p.log.Debug("playback starting", "events", len(events), "tempo", c.Tempo)
	go p.run(events, stop, done)
	return done
}

// Stop signals the active run, if any, and returns without waiting for
// it to exit.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// Playing reports whether a run is active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// run walks the sorted timeline, sleeping between events. The stop
// channel is checked before every wait and every emit, so cancellation
// takes effect at the next event boundary.
func (p *Player) run(events []midi.Event, stop chan struct{}, done chan struct{}) {
	defer close(done)
	defer p.clear(stop)

	start := time.Now()
	for _, ev := range events {
		if wait := ev.At - time.Since(start); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-stop:
				timer.Stop()
				return
			case <-timer.C:
			}
		}
		select {
		case <-stop:
			return
		default:
		}
		if err := p.sink.Emit(ev); err != nil {
			// best effort: a failed emit never aborts the timeline
			p.log.Warn("event emit failed", "err", err, "track", ev.Track, "note", ev.Note)
		}
	}
	p.log.Debug("playback finished", "elapsed", time.Since(start))
}

// clear drops the active marker, but only if it still belongs to this
// run; a replacing Play may already have swapped it.
func (p *Player) clear(stop chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == stop {
		p.stop = nil
	}
}
