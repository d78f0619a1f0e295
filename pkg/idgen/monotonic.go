package idgen

import (
	"sync"
	"time"
)

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Monotonic выдаёт строго возрастающие числовые идентификаторы.
// Значение близко к unix-времени в миллисекундах, но два вызова в одну и ту же
// миллисекунду всё равно получают разные id.
type Monotonic struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// NewMonotonic создает генератор на системных часах
func NewMonotonic() *Monotonic {
	return &Monotonic{clock: systemClock{}}
}

// NewMonotonicWithClock создает генератор с заданным источником времени
func NewMonotonicWithClock(clock Clock) *Monotonic {
	return &Monotonic{clock: clock}
}

// Next возвращает следующий id
func (g *Monotonic) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.clock.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe сообщает генератору об уже существующем id,
// чтобы следующие значения были строго больше него
func (g *Monotonic) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
