package slotlock

import (
	"context"
	"fmt"
	"sync"
)

// Local сериализует операции по ключу внутри одного процесса
type Local struct {
	mu    sync.Mutex
	slots map[string]*slotLock
}

type slotLock struct {
	ch   chan struct{}
	refs int
}

func NewLocal() *Local {
	return &Local{slots: make(map[string]*slotLock)}
}

// DoSerialized выполняет fn, удерживая блокировку ключа
// Ожидание прерывается отменой контекста
func (l *Local) DoSerialized(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	s := l.ref(key)
	defer l.unref(key, s)

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
	}
	defer func() { <-s.ch }()

	return fn(ctx)
}

func (l *Local) ref(key string) *slotLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slotLock{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *Local) unref(key string, s *slotLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

// size количество ключей, для которых есть ожидающие или активные операции
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
