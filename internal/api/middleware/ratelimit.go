package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
)

const msgTooManyRequests = "muitas requisições, tente novamente mais tarde"

// Limiter решает, можно ли обработать очередной запрос клиента
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// DefaultMaxClients предел числа клиентов, которых MemoryLimiter держит в памяти
const DefaultMaxClients = 10000

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter token bucket на клиента в памяти процесса.
// Клиенты, не обращавшиеся дольше idleTTL, удаляются: их корзина к этому моменту уже полная.
type MemoryLimiter struct {
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	maxClients int
	now        func() time.Time

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time
}

func NewMemoryLimiter(requestsPerMinute, burst int) *MemoryLimiter {
	interval := time.Minute / time.Duration(requestsPerMinute)
	return &MemoryLimiter{
		limit:      rate.Every(interval),
		burst:      burst,
		idleTTL:    max(time.Duration(burst)*interval, time.Minute),
		maxClients: DefaultMaxClients,
		now:        time.Now,
		limiters:   make(map[string]*clientLimiter),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	entry, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= l.maxClients {
			l.sweep(now)
			if len(l.limiters) >= l.maxClients {
				l.evictOldest()
			}
		}
		entry = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1), nil
}

// Clients число клиентов, для которых хранится состояние
func (l *MemoryLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.idleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func (l *MemoryLimiter) evictOldest() {
	var (
		oldestKey  string
		oldestSeen time.Time
		found      bool
	)
	for key, entry := range l.limiters {
		if !found || entry.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen, found = key, entry.lastSeen, true
		}
	}
	if found {
		delete(l.limiters, oldestKey)
	}
}

// Скрипт фиксированного окна: счетчик живет ровно одно окно
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter фиксированное окно в Redis, общее для всех экземпляров сервиса
type RedisLimiter struct {
	client redis.Scripter
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(client redis.Scripter, requestsPerWindow int, window time.Duration, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{
		client: client,
		limit:  int64(requestsPerWindow),
		window: window,
		prefix: prefix,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit script: %w", err)
	}
	return count <= l.limit, nil
}

// ClientKeyResolver определяет адрес клиента для лимита.
// X-Forwarded-For учитывается только от доверенных прокси.
type ClientKeyResolver struct {
	trusted []netip.Prefix
}

// NewClientKeyResolver принимает IP или CIDR доверенных прокси
func NewClientKeyResolver(trustedProxies []string) (*ClientKeyResolver, error) {
	prefixes := make([]netip.Prefix, 0, len(trustedProxies))
	for _, raw := range trustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return &ClientKeyResolver{trusted: prefixes}, nil
}

// Key адрес клиента. Цепочка X-Forwarded-For разбирается справа налево,
// пока адреса принадлежат доверенным прокси.
func (c *ClientKeyResolver) Key(r *http.Request) string {
	remote, ok := remoteAddr(r)
	if !ok {
		return r.RemoteAddr
	}
	if !c.isTrusted(remote) {
		return remote.String()
	}

	hops := forwardedHops(r)
	client := remote
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(hops[i])
		if err != nil {
			break
		}
		client = addr.Unmap()
		if !c.isTrusted(client) {
			break
		}
	}
	return client.String()
}

func (c *ClientKeyResolver) isTrusted(addr netip.Addr) bool {
	for _, prefix := range c.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteAddr(r *http.Request) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func forwardedHops(r *http.Request) []string {
	var hops []string
	for _, header := range r.Header.Values("X-Forwarded-For") {
		for _, part := range strings.Split(header, ",") {
			if part = strings.TrimSpace(part); part != "" {
				hops = append(hops, part)
			}
		}
	}
	return hops
}

// RateLimit отклоняет запросы сверх лимита с кодом 429.
// При недоступности хранилища лимитов запрос пропускается.
func RateLimit(limiter Limiter, keys *ClientKeyResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keys.Key(r)
			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("%s %s - Rate limiter unavailable: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("%s %s - Rate limit exceeded: client=%s", r.Method, r.URL.Path, key)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
