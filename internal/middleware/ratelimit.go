package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TooManyRequestsMessage - текст ответа 429
const TooManyRequestsMessage = "Too many requests, please try again later."

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает число запросов от одного клиента:
// не более maxRequests запросов за window, токены восполняются равномерно.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	logger   *zap.Logger
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter создает ограничитель и запускает фоновую очистку
// неактивных клиентов. Вызовите Stop при остановке сервера.
func NewRateLimiter(window time.Duration, maxRequests int, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
		idle:     window,
		logger:   logger,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Handler возвращает middleware, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		res := rl.get(key).Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()

			rl.logger.Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", r.URL.Path),
				zap.Duration("retry_after", delay),
			)

			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			writeJSON(rl.logger, w, http.StatusTooManyRequests, map[string]string{"error": TooManyRequestsMessage})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()

	return v.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stop:
			return
		}
	}
}

// evictIdle удаляет клиентов, не обращавшихся дольше окна
func (rl *RateLimiter) evictIdle() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idle)
	removed := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			removed++
		}
	}

	return removed
}

// clientKey - IP клиента без порта (RemoteAddr уже исправлен chi RealIP)
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
