package sequencer

import (
	"os"
	"sync"

	"github.com/linkerage/midiseq/logger"
	"github.com/linkerage/midiseq/midi"
)

// Manager is the owner-keyed access point to compositions. Each owner
// gets an in-memory document (loaded lazily from the store), a player
// and a mutex; operations on different owners never contend.
type Manager struct {
	store *Store
	sink  midi.Sink
	log   *logger.Logger

	mu     sync.Mutex
	owners map[string]*ownerEntry
}

// ownerEntry serializes edit, play and stop calls for a single owner.
type ownerEntry struct {
	mu     sync.Mutex
	comp   *Composition
	player *Player
}

func NewManager(store *Store, sink midi.Sink, log *logger.Logger) *Manager {
	return &Manager{
		store:  store,
		sink:   sink,
		log:    log,
		owners: make(map[string]*ownerEntry),
	}
}

// entry returns the owner's slot, creating it on first access. Entries
// are never evicted; Clear leaves an empty document behind.
func (m *Manager) entry(owner string) *ownerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.owners[owner]
	if !ok {
		e = &ownerEntry{}
		m.owners[owner] = e
	}
	return e
}

// composition resolves the owner's in-memory document, loading from the
// store on first access. Missing or unreadable records degrade to a
// fresh default document; they are never fatal.
func (m *Manager) composition(owner string, e *ownerEntry) *Composition {
	if e.comp != nil {
		return e.comp
	}

	c, err := m.store.Load(owner)
	switch {
	case err == nil:
		m.log.Debug("composition loaded", "owner", owner, "notes", c.NoteCount())
	case os.IsNotExist(err):
		c = NewComposition(owner)
		m.log.Debug("new composition", "owner", owner)
	default:
		c = NewComposition(owner)
		m.log.Warn("unreadable composition record, starting fresh", "owner", owner, "err", err)
	}
	e.comp = c
	return c
}

// mutate runs fn on the owner's document under its lock and, on success,
// persists the result. Autosave failures are logged but do not fail the
// edit; the in-memory state is already updated.
func (m *Manager) mutate(owner string, fn func(*Composition) error) error {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()

	c := m.composition(owner, e)
	if err := fn(c); err != nil {
		return err
	}
	if err := m.store.Save(c); err != nil {
		m.log.Warn("autosave failed", "owner", owner, "err", err)
	}
	return nil
}

// GetOrCreate ensures the owner's composition exists and returns a deep
// copy for inspection. Mutations go through the Manager's operations so
// they stay serialized per owner.
func (m *Manager) GetOrCreate(owner string) *Composition {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	return m.composition(owner, e).Clone()
}

// AddTrack appends a track and returns its index.
func (m *Manager) AddTrack(owner, name string) (int, error) {
	var idx int
	err := m.mutate(owner, func(c *Composition) error {
		idx = c.AddTrack(name)
		return nil
	})
	return idx, err
}

func (m *Manager) SetInstrument(owner string, track, value int) error {
	return m.mutate(owner, func(c *Composition) error {
		return c.SetInstrument(track, value)
	})
}

func (m *Manager) SetTempo(owner string, bpm int) error {
	return m.mutate(owner, func(c *Composition) error {
		return c.SetTempo(bpm)
	})
}

func (m *Manager) AddNote(owner string, track, pitch, velocity int, start, duration float64) error {
	return m.mutate(owner, func(c *Composition) error {
		return c.AddNote(track, pitch, velocity, start, duration)
	})
}

func (m *Manager) RemoveNote(owner string, track, note int) error {
	return m.mutate(owner, func(c *Composition) error {
		return c.RemoveNote(track, note)
	})
}

// Clear resets the owner's document to its default state and persists
// the reset. The owner's entry survives as an empty document.
func (m *Manager) Clear(owner string) error {
	return m.mutate(owner, func(c *Composition) error {
		c.Clear()
		return nil
	})
}

// Save explicitly persists the owner's document. Unlike autosave, the
// error is returned to the caller.
func (m *Manager) Save(owner string) error {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	return m.store.Save(m.composition(owner, e))
}

// Summary reports tempo, counts and duration without side effects.
func (m *Manager) Summary(owner string) Summary {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	return m.composition(owner, e).Summarize()
}

// Describe returns the one-line composition description used by front
// ends to answer info requests.
func (m *Manager) Describe(owner string) string {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	return m.composition(owner, e).Describe()
}

// Play starts playback of a snapshot of the owner's current document,
// replacing any run already in flight. Non-blocking; the returned
// channel closes when the run exits.
func (m *Manager) Play(owner string) <-chan struct{} {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()

	c := m.composition(owner, e)
	if e.player == nil {
		e.player = NewPlayer(m.sink, m.log.With("owner", owner))
	}
	return e.player.Play(c)
}

// Stop signals the owner's active playback, if any, and returns
// immediately.
func (m *Manager) Stop(owner string) {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player != nil {
		e.player.Stop()
	}
}

// Playing reports whether the owner has a playback run in flight.
func (m *Manager) Playing(owner string) bool {
	e := m.entry(owner)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.player != nil && e.player.Playing()
}

// Delete stops playback, drops the in-memory entry and removes the
// persisted record. This is the only way an owner's record is destroyed.
func (m *Manager) Delete(owner string) error {
	e := m.entry(owner)
	e.mu.Lock()
	if e.player != nil {
		e.player.Stop()
	}
	e.comp = nil
	e.mu.Unlock()

	m.mu.Lock()
	delete(m.owners, owner)
	m.mu.Unlock()

	return m.store.Delete(owner)
}

// List returns the owners with persisted records.
func (m *Manager) List() ([]string, error) {
	return m.store.List()
}
