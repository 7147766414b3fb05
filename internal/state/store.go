package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tobvie/gearlist/internal/logger"
	"github.com/tobvie/gearlist/internal/storage"
)

// collapsedKey is the sub-tree that holds per-group collapse flags.
const collapsedKey = "collapsed"

// themeKey is the theme entry inside the state tree. The theme is also
// written to its own storage key (storage.KeyTheme); that dedicated key is
// the authoritative value when the two disagree.
const themeKey = "theme"

// SubscriberFunc receives the exact path that changed and its new value.
type SubscriberFunc func(path string, value any)

// Store owns the persisted state tree: per-project completion flags,
// per-group collapse flags and the theme preference. Every mutation is
// mirrored to the storage backend; storage failures degrade to memory-only
// operation and a log line, never an error to the caller.
//
// The store is confined to the UI goroutine. All mutation happens
// synchronously in response to discrete events, so there is no locking.
type Store struct {
	backend      storage.Backend
	tree         map[string]any
	defaultTheme string

	subscribers map[string]map[int]SubscriberFunc
	nextSubID   int
}

// NewStore creates a store on top of the given backend. defaultTheme is
// used when neither storage key carries a theme yet.
func NewStore(backend storage.Backend, defaultTheme string) *Store {
	if defaultTheme == "" {
		defaultTheme = "light"
	}
	return &Store{
		backend:      backend,
		tree:         newTree(),
		defaultTheme: defaultTheme,
		subscribers:  make(map[string]map[int]SubscriberFunc),
	}
}

func newTree() map[string]any {
	return map[string]any{
		collapsedKey: map[string]any{},
	}
}

// Load reads the durable state blob. Missing, corrupt or unreadable data
// resets to an empty tree with a warning; Load never fails.
func (s *Store) Load() {
	s.tree = newTree()

	data, err := s.backend.Read(storage.KeyState)
	switch {
	case err == nil:
		var tree map[string]any
		if uerr := json.Unmarshal(data, &tree); uerr != nil {
			logger.Get().Warn("state blob is corrupt, starting fresh", "error", uerr)
		} else if tree != nil {
			s.tree = tree
		}
	case errors.Is(err, storage.ErrNotFound):
		// First run.
	default:
		logger.Get().Warn("failed to read state, operating in memory only", "error", err)
	}

	if _, ok := s.tree[collapsedKey].(map[string]any); !ok {
		s.tree[collapsedKey] = map[string]any{}
	}
	s.tree[themeKey] = s.loadTheme()
}

// loadTheme resolves the theme preference. The dedicated key wins over the
// value embedded in the state tree.
func (s *Store) loadTheme() string {
	if data, err := s.backend.Read(storage.KeyTheme); err == nil && len(data) > 0 {
		return string(data)
	}
	if theme, ok := s.tree[themeKey].(string); ok && theme != "" {
		return theme
	}
	return s.defaultTheme
}

// Get walks the tree along a dot-separated path. The second return value
// is false when any key on the path is absent or an intermediate value is
// not traversable.
func (s *Store) Get(path string) (any, bool) {
	return lookup(s.tree, splitPath(path))
}

// GetDefault returns the value at path, or def when the path does not
// resolve.
func (s *Store) GetDefault(path string, def any) any {
	if value, ok := s.Get(path); ok {
		return value
	}
	return def
}

// GetBool reads the value at path as a boolean; anything absent or
// non-boolean reads as false.
func (s *Store) GetBool(path string) bool {
	value, _ := s.Get(path)
	b, _ := value.(bool)
	return b
}

// Set assigns value at the dot-separated path, creating intermediate maps
// as needed, persists the tree and then notifies subscribers registered
// for that exact path. Persistence failures are logged, never propagated;
// the in-memory update and the notifications still happen.
func (s *Store) Set(path string, value any) {
	assign(s.tree, splitPath(path), value)
	s.persist()
	s.notify(path, value)
}

// Toggle flips the boolean at path (absent reads as false) and returns the
// new value.
func (s *Store) Toggle(path string) bool {
	next := !s.GetBool(path)
	s.Set(path, next)
	return next
}

// ItemCompleted reports the completion flag for an item in a project.
func (s *Store) ItemCompleted(project, itemID string) bool {
	return s.GetBool(project + "." + itemID)
}

// SetItemCompleted sets the completion flag for an item in a project.
func (s *Store) SetItemCompleted(project, itemID string, done bool) {
	s.Set(project+"."+itemID, done)
}

// ToggleItem flips an item's completion flag and returns the new value.
func (s *Store) ToggleItem(project, itemID string) bool {
	return s.Toggle(project + "." + itemID)
}

// GroupCollapsed reports whether a requirement group is collapsed.
func (s *Store) GroupCollapsed(groupID string) bool {
	return s.GetBool(collapsedKey + "." + groupID)
}

// ToggleGroup flips a group's collapsed flag and returns the new value.
func (s *Store) ToggleGroup(groupID string) bool {
	return s.Toggle(collapsedKey + "." + groupID)
}

// Theme returns the current theme preference.
func (s *Store) Theme() string {
	if theme, ok := s.tree[themeKey].(string); ok && theme != "" {
		return theme
	}
	return s.defaultTheme
}

// SetTheme stores the theme in the tree and mirrors it to the dedicated
// storage key.
func (s *Store) SetTheme(theme string) {
	s.Set(themeKey, theme)
	if err := s.backend.Write(storage.KeyTheme, []byte(theme)); err != nil {
		logger.Get().Warn("failed to persist theme", "error", err)
	}
}

// Subscribe registers fn for changes to the exact path (no prefix or
// wildcard matching) and returns the unsubscribe function. A subscriber
// that panics is recovered and logged; remaining subscribers still run.
func (s *Store) Subscribe(path string, fn SubscriberFunc) func() {
	subs, ok := s.subscribers[path]
	if !ok {
		subs = make(map[int]SubscriberFunc)
		s.subscribers[path] = subs
	}

	id := s.nextSubID
	s.nextSubID++
	subs[id] = fn

	return func() {
		delete(subs, id)
		if len(subs) == 0 {
			delete(s.subscribers, path)
		}
	}
}

func (s *Store) notify(path string, value any) {
	subs, ok := s.subscribers[path]
	if !ok {
		return
	}

	// Stable order so test output and log interleaving are deterministic.
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		fn, ok := subs[id]
		if !ok {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Get().Warn("state subscriber panicked", "path", path, "panic", fmt.Sprint(r))
				}
			}()
			fn(path, value)
		}()
	}
}

// State returns a top-level shallow copy of the tree for debug/export use.
// Nested values are shared; callers must not mutate them.
func (s *Store) State() map[string]any {
	copied := make(map[string]any, len(s.tree))
	for k, v := range s.tree {
		copied[k] = v
	}
	return copied
}

// Clear writes a backup snapshot of the current tree, resets it to the
// default structure and deletes both storage keys.
func (s *Store) Clear() {
	s.backup()

	s.tree = newTree()
	s.tree[themeKey] = s.defaultTheme

	if err := s.backend.Delete(storage.KeyState); err != nil {
		logger.Get().Warn("failed to delete state key", "error", err)
	}
	if err := s.backend.Delete(storage.KeyTheme); err != nil {
		logger.Get().Warn("failed to delete theme key", "error", err)
	}
}

// backup snapshots the serialized tree under a unique key so an accidental
// reset can be recovered by hand.
func (s *Store) backup() {
	data, err := json.Marshal(s.tree)
	if err != nil {
		logger.Get().Warn("failed to serialize state for backup", "error", err)
		return
	}

	id, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		logger.Get().Warn("failed to generate backup id", "error", err)
		return
	}

	key := fmt.Sprintf("%s-backup-%s.json", storage.KeyState, id)
	if err := s.backend.Write(key, data); err != nil {
		logger.Get().Warn("failed to write state backup", "error", err)
	}
}

func (s *Store) persist() {
	data, err := json.Marshal(s.tree)
	if err != nil {
		logger.Get().Warn("failed to serialize state", "error", err)
		return
	}
	if err := s.backend.Write(storage.KeyState, data); err != nil {
		logger.Get().Warn("failed to persist state, keeping changes in memory", "error", err)
	}
}
