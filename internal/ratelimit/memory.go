package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

// entradas sem uso há mais que isso são descartadas
const idleTTL = 3 * time.Minute

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// Memory é um token bucket por chave, válido para uma única instância.
type Memory struct {
	mu      sync.Mutex
	clients map[string]*client
	r       rate.Limit
	burst   int
	sched   *cron.Cron
	once    sync.Once
}

func NewMemory(perMinute int) *Memory {
	if perMinute <= 0 {
		perMinute = 1
	}
	m := &Memory{
		clients: make(map[string]*client),
		r:       rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		sched:   cron.New(),
	}

	if _, err := m.sched.AddFunc("@every 1m", func() { m.prune(idleTTL) }); err == nil {
		m.sched.Start()
	}
	return m
}

func (m *Memory) get(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[key]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(m.r, m.burst)
	m.clients[key] = &client{lim: l, seen: time.Now()}
	return l
}

func (m *Memory) prune(idle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, c := range m.clients {
		if time.Since(c.seen) > idle {
			delete(m.clients, key)
		}
	}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	return m.get(key).Allow(), nil
}

func (m *Memory) Close() {
	m.once.Do(func() { <-m.sched.Stop().Done() })
}
