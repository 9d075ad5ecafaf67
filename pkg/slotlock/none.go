package slotlock

import "context"

// None не сериализует ничего: проверка слота и запись выполняются без блокировки.
// Конкурентные запросы на один слот могут превысить лимит на (N-1) бронирований.
type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) DoSerialized(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
