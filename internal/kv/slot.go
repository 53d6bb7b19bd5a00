package kv

// Slot binds one logical key to its type, default and normalizer. Defaults
// are produced fresh on every miss so callers never share backing arrays.
type Slot[T any] struct {
	store     *Store
	key       string
	def       func() T
	normalize func(T) T
}

func NewSlot[T any](s *Store, key string, def func() T, normalize func(T) T) Slot[T] {
	return Slot[T]{store: s, key: key, def: def, normalize: normalize}
}

func (sl Slot[T]) Key() string { return sl.key }

// Get returns the current value. Slices and maps are shared with the cache:
// treat them as read-only and change them through Set or Update.
func (sl Slot[T]) Get() T {
	return Read(sl.store, sl.key, sl.def, sl.normalize)
}

func (sl Slot[T]) Set(v T) T {
	return Write(sl.store, sl.key, v)
}

// Update applies fn to the latest value and stores the result.
func (sl Slot[T]) Update(fn func(T) T) T {
	return Update(sl.store, sl.key, sl.def, sl.normalize, fn)
}

// Modify is Update for changes that may not apply. When fn reports false
// nothing is written and the current value is returned.
func (sl Slot[T]) Modify(fn func(T) (T, bool)) (T, bool) {
	sl.store.mu.Lock()
	defer sl.store.mu.Unlock()
	cur := load(sl.store, sl.key, sl.def, sl.normalize)
	next, ok := fn(cur)
	if !ok {
		return cur, false
	}
	store(sl.store, sl.key, next)
	return next, true
}
