// Package app holds every feature operation of LifeOS. Each operation reads
// the latest value of one key, builds a new value without touching the old
// one and writes it back through the repository.
package app

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeos/internal/constants"
	apperrors "github.com/julianstephens/lifeos/internal/errors"
	"github.com/julianstephens/lifeos/internal/kv"
	"github.com/julianstephens/lifeos/internal/utils"
)

var (
	ErrNotFound        = apperrors.ErrNotFound
	ErrAmbiguousID     = errors.New("ambiguous id")
	ErrNoEntriesToCopy = errors.New("no entries found for the previous day")
)

// minPrefix is the shortest id prefix accepted in place of a full id.
const minPrefix = 4

type App struct {
	repo  *kv.Repository
	now   func() time.Time
	newID func() string
	rng   *rand.Rand
	loc   *time.Location
}

type Option func(*App)

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func WithIDGenerator(fn func() string) Option {
	return func(a *App) { a.newID = fn }
}

func WithRand(r *rand.Rand) Option {
	return func(a *App) { a.rng = r }
}

// WithLocation sets the timezone that decides "today".
func WithLocation(loc *time.Location) Option {
	return func(a *App) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func New(repo *kv.Repository, opts ...Option) *App {
	a := &App{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Repository() *kv.Repository { return a.repo }

// Now returns the current time in the configured location.
func (a *App) Now() time.Time { return a.now().In(a.loc) }

// Today returns the current date as YYYY-MM-DD.
func (a *App) Today() string { return a.Now().Format(constants.DateFormat) }

func (a *App) orToday(date string) string {
	if date == "" {
		return a.Today()
	}
	return date
}

func (a *App) millis() int64 { return utils.NowMillis(a.now()) }

// findIndex locates id in items. An exact id always wins; otherwise a
// unique prefix of at least minPrefix characters matches.
func findIndex[T any](items []T, id string, idOf func(T) string, kind string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, apperrors.NotFound(kind, id)
	}
	for i, it := range items {
		if idOf(it) == id {
			return i, nil
		}
	}
	if len(id) < minPrefix {
		return -1, apperrors.NotFound(kind, id)
	}

	match := -1
	for i, it := range items {
		if !strings.HasPrefix(idOf(it), id) {
			continue
		}
		if match >= 0 {
			return -1, fmt.Errorf("%s %q: %w", kind, id, ErrAmbiguousID)
		}
		match = i
	}
	if match < 0 {
		return -1, apperrors.NotFound(kind, id)
	}
	return match, nil
}

// without returns a copy of items with index i removed.
func without[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// replaced returns a copy of items with index i set to v.
func replaced[T any](items []T, i int, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out
}

// remove deletes the record matching id from slot.
func remove[T any](slot kv.Slot[[]T], id string, idOf func(T) string, kind string) (T, error) {
	var (
		removed T
		err     error
	)
	slot.Modify(func(items []T) ([]T, bool) {
		var i int
		if i, err = findIndex(items, id, idOf, kind); err != nil {
			return items, false
		}
		removed = items[i]
		return without(items, i), true
	})
	return removed, err
}

// change applies fn to the record matching id in slot.
func change[T any](slot kv.Slot[[]T], id string, idOf func(T) string, kind string, fn func(T) (T, error)) (T, error) {
	var (
		updated T
		err     error
	)
	slot.Modify(func(items []T) ([]T, bool) {
		var i int
		if i, err = findIndex(items, id, idOf, kind); err != nil {
			return items, false
		}
		if updated, err = fn(items[i]); err != nil {
			return items, false
		}
		return replaced(items, i, updated), true
	})
	return updated, err
}
