package store

import "sync"

// Entity запись, хранимая в коллекции: ключ и глубокая копия
type Entity[T any] interface {
	Key() string
	Clone() T
}

// Collection in-memory реестр записей одного типа.
// Записи копируются на входе и выходе, поэтому вызывающий код не разделяет с коллекцией изменяемые ссылки.
type Collection[T Entity[T]] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection создает коллекцию с начальными записями в заданном порядке
func NewCollection[T Entity[T]](seed []T) *Collection[T] {
	c := &Collection[T]{items: make([]T, 0, len(seed))}
	for _, item := range seed {
		c.items = append(c.items, item.Clone())
	}
	return c
}

// Add добавляет запись в начало коллекции. Уникальность ключа не проверяется.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, 0, len(c.items)+1)
	items = append(items, item.Clone())
	c.items = append(items, c.items...)
}

// Update заменяет запись с тем же ключом. Отсутствующий ключ игнорируется, результат сообщает, была ли замена.
func (c *Collection[T]) Update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := false
	for i := range c.items {
		if c.items[i].Key() == item.Key() {
			c.items[i] = item.Clone()
			updated = true
		}
	}
	return updated
}

// Delete удаляет запись по ключу. Повторный вызов ничего не делает.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.Key() != id {
			kept = append(kept, item)
		}
	}
	deleted := len(kept) != len(c.items)
	c.items = kept
	return deleted
}

// Get возвращает копию записи по ключу
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.Key() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// List возвращает снимок коллекции
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]T, len(c.items))
	for i, item := range c.items {
		snapshot[i] = item.Clone()
	}
	return snapshot
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
