package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

type limitParams func(config.RateLimitConfig) (float64, int)

// AuthRateLimit 登录/注册接口的限流。
func AuthRateLimit() gin.HandlerFunc {
	return rateLimitMiddleware(func(cfg config.RateLimitConfig) (float64, int) {
		return cfg.AuthRPS, cfg.AuthBurst
	})
}

// UploadRateLimit 图片上传接口的限流。
func UploadRateLimit() gin.HandlerFunc {
	return rateLimitMiddleware(func(cfg config.RateLimitConfig) (float64, int) {
		return cfg.UploadRPS, cfg.UploadBurst
	})
}

// rateLimitMiddleware 按 IP 限流，每个路由组共用一个 IPRateLimiter 实例。
func rateLimitMiddleware(params limitParams) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		currentRPS, currentBurst := params(cfg)

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		ip := c.ClientIP()
		l := limiter.getLimiter(ip)

		// 配置热更新时同步 limit 与 burst
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Trop de requêtes, veuillez réessayer plus tard"})
			c.Abort()
			return
		}
		c.Next()
	}
}
