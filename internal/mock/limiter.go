package mock

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const visitorTTL = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors hands out one token bucket per client address.
type visitors struct {
	rps   rate.Limit
	burst int
	seen  map[string]*visitor
	mx    sync.Mutex
}

func newVisitors(rps float64, burst int) *visitors {
	if burst <= 0 {
		burst = 1
	}
	return &visitors{
		rps:   rate.Limit(rps),
		burst: burst,
		seen:  make(map[string]*visitor),
	}
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mx.Lock()
	defer v.mx.Unlock()

	vis, ok := v.seen[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.seen[ip] = vis
	}
	vis.lastSeen = time.Now()

	return vis.limiter
}

// sweep drops visitors idle for longer than ttl.
func (v *visitors) sweep(ttl time.Duration) {
	v.mx.Lock()
	defer v.mx.Unlock()

	for ip, vis := range v.seen {
		if time.Since(vis.lastSeen) > ttl {
			delete(v.seen, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
