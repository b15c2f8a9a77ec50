package repository

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/siherrmann/wordarray/core/observer"
	"github.com/siherrmann/wordarray/core/specification"
	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
)

// RepositoryFunctions defines the operations of the word array repository.
type RepositoryFunctions interface {
	Add(array *model.WordArray) bool
	Remove(array *model.WordArray) bool
	Clear() int
	All() []*model.WordArray
	Query(spec specification.Specification) []*model.WordArray
	Len() int
}

// Repository is the source of truth for stored word arrays.
//
// Arrays are kept in insertion order and duplicates are allowed. Every
// mutation broadcasts an event through the owned observer manager while the
// write lock is held, so readers never see the store and its observers out
// of step. Observers must not call back into the repository while handling
// an event.
//
// Reads that bypass the repository, such as Warehouse.Statistics, are not
// covered by that lock: during a broadcast they may already report a record
// for an array that All and Query callers are still blocked from seeing.
type Repository struct {
	mu        sync.RWMutex
	arrays    []*model.WordArray
	observers *observer.Manager
	log       *slog.Logger
	metrics   *helper.Metrics
}

var _ RepositoryFunctions = (*Repository)(nil)

// NewRepository creates an empty repository with its own observer manager.
// Both logger and metrics may be nil.
func NewRepository(logger *slog.Logger, metrics *helper.Metrics) *Repository {
	logger = helper.LoggerOrDiscard(logger)

	r := &Repository{
		observers: observer.NewManager(logger, metrics),
		log:       logger.With(slog.String("component", "repository")),
		metrics:   metrics,
	}
	r.log.Info("Repository created")

	return r
}

// Add appends array and broadcasts an ADD event.
// Nil arrays and arrays with a nil ID are ignored.
func (r *Repository) Add(array *model.WordArray) bool {
	if array == nil || array.ID() == uuid.Nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.arrays = append(r.arrays, array)
	r.metrics.SetRepositorySize(len(r.arrays))
	r.observers.Notify(array, model.EventAdd)
	r.log.Debug("Array added to repository", slog.String("array_id", array.ID().String()))

	return true
}

// Remove deletes the first stored array with the same ID as array and
// broadcasts a REMOVE event carrying the stored instance.
// It returns false if nothing matched.
func (r *Repository) Remove(array *model.WordArray) bool {
	if array == nil || array.ID() == uuid.Nil {
		return false
	}
	id := array.ID()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.arrays {
		if stored.ID() != id {
			continue
		}

		r.arrays = slices.Delete(r.arrays, i, i+1)
		r.metrics.SetRepositorySize(len(r.arrays))
		r.observers.Notify(stored, model.EventRemove)
		r.log.Debug("Array removed from repository", slog.String("array_id", id.String()))

		return true
	}

	return false
}

// Clear broadcasts a REMOVE event for every stored array in order and then
// empties the store. It returns the number of removed arrays.
func (r *Repository) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := len(r.arrays)
	if size == 0 {
		r.log.Info("Repository is already empty, nothing to clear")
		return 0
	}

	r.log.Info("Starting repository clearance", slog.Int("size", size))
	for _, stored := range r.arrays {
		r.observers.Notify(stored, model.EventRemove)
	}
	r.arrays = nil
	r.metrics.SetRepositorySize(0)
	r.log.Info("Repository cleared", slog.Int("removed", size))

	return size
}

// All returns a snapshot of the stored arrays in insertion order
func (r *Repository) All() []*model.WordArray {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.WordArray, len(r.arrays))
	copy(out, r.arrays)
	return out
}

// Query returns the stored arrays matching spec in insertion order.
// A nil spec matches nothing.
func (r *Repository) Query(spec specification.Specification) []*model.WordArray {
	out := []*model.WordArray{}
	if spec == nil {
		return out
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.arrays {
		if spec.Specified(stored) {
			out = append(out, stored)
		}
	}
	return out
}

// Len returns the number of stored arrays
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.arrays)
}

// AddObserver registers o with the repository's observer manager
func (r *Repository) AddObserver(o observer.Observer) bool {
	return r.observers.Register(o)
}

// RemoveObserver unregisters o
func (r *Repository) RemoveObserver(o observer.Observer) bool {
	return r.observers.Unregister(o)
}

// ObserverCount returns the number of registered observers
func (r *Repository) ObserverCount() int {
	return r.observers.Count()
}

// ObserverNames returns the registered observer names in delivery order
func (r *Repository) ObserverNames() []string {
	return r.observers.Names()
}

// ClearObservers unregisters every observer
func (r *Repository) ClearObservers() {
	r.observers.Clear()
}
