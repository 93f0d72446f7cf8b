package libol

import (
	"sort"
	"sync"
)

// SafeStrMap is a size bounded map guarded by a RWMutex, size zero
// means unbounded.
type SafeStrMap struct {
	size int
	data map[string]any
	lock sync.RWMutex
}

func NewSafeStrMap(size int) *SafeStrMap {
	calSize := size
	if calSize == 0 {
		calSize = 128
	}
	return &SafeStrMap{
		size: size,
		data: make(map[string]any, calSize),
	}
}

func (sm *SafeStrMap) Len() int {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	return len(sm.data)
}

// Set fails when k is already present, the existing value is kept.
func (sm *SafeStrMap) Set(k string, v any) error {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	if _, ok := sm.data[k]; ok {
		return NewErr("SafeStrMap.Set %s already exists", k)
	}
	if sm.size != 0 && len(sm.data) >= sm.size {
		return NewErr("SafeStrMap.Set already full")
	}
	sm.data[k] = v
	return nil
}

func (sm *SafeStrMap) Del(k string) {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	delete(sm.data, k)
}

func (sm *SafeStrMap) GetEx(k string) (any, bool) {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	v, ok := sm.data[k]
	return v, ok
}

// Keys returns the sorted keys.
func (sm *SafeStrMap) Keys() []string {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	keys := make([]string, 0, len(sm.data))
	for k := range sm.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
