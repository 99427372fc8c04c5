package keylock

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Map はキーごとに排他制御を行うロックの集合です。
// 異なるキーのロックは互いに干渉せず、使われなくなったキーのエントリは解放されます。
type Map[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// New は空の Map を生成します。
func New[K comparable]() *Map[K] {
	return &Map[K]{entries: make(map[K]*entry)}
}

// Lock は key のロックを取得し、解放関数を返します。
// ctx がキャンセルされた場合は取得を諦めてエラーを返します。
func (m *Map[K]) Lock(ctx context.Context, key K) (func(), error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		m.release(key, e)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			m.release(key, e)
		})
	}, nil
}

// Len は保持しているキーの数を返します。
func (m *Map[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Map[K]) release(key K, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}
