package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/service"
	"github.com/Hamziss/agence-immobliere/internal/utils"
	"github.com/gin-gonic/gin"
)

var (
	// roleCache 缓存用户角色，减少数据库查询。
	// Key: userID (uint), Value: cachedRole
	roleCache sync.Map
)

const roleCacheTTL = 1 * time.Minute

type cachedRole struct {
	Role      consts.Role
	ExpiresAt time.Time
}

// ClearUserRoleCache 清除指定用户的角色缓存。
func ClearUserRoleCache(userID uint) {
	roleCache.Delete(userID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := service.RedisKey("auth", "user_role", strconv.FormatUint(uint64(userID), 10))
		_ = redisClient.Del(ctx, key).Err()
	}
}

// JWTAuth 要求请求携带有效的登录令牌，否则拒绝。
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format du jeton invalide"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Jeton invalide ou expiré"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("name", claims.Name)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// OptionalJWTAuth 可选认证：没有令牌或令牌无效时按匿名请求放行。
// 匿名请求只能看到已发布的房源，由用例层保证。
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("id", claims.ID)
		c.Set("name", claims.Name)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// UserRoleCheck 校验用户仍然存在并刷新其角色。
// 令牌签发后角色被改动或账号被删除时，最多在缓存 TTL 内生效。
func UserRoleCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
			c.Abort()
			return
		}

		uid, ok := userID.(uint)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Jeton invalide"})
			c.Abort()
			return
		}

		var (
			currentRole consts.Role
			roleFound   bool
		)

		// 优先从 Redis 读取
		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			key := service.RedisKey("auth", "user_role", strconv.FormatUint(uint64(uid), 10))
			cachedRoleStr, err := redisClient.Get(ctx, key).Result()
			if err == nil && consts.ValidRole(consts.Role(cachedRoleStr)) {
				currentRole = consts.Role(cachedRoleStr)
				roleFound = true
				roleCache.Store(uid, cachedRole{
					Role:      currentRole,
					ExpiresAt: time.Now().Add(roleCacheTTL),
				})
			}
		}

		// Redis 未命中或不可用时，回退本地内存缓存
		if !roleFound {
			if val, ok := roleCache.Load(uid); ok {
				cached, typeOk := val.(cachedRole)
				if typeOk {
					if time.Now().Before(cached.ExpiresAt) {
						currentRole = cached.Role
						roleFound = true
					} else {
						roleCache.Delete(uid)
					}
				}
			}
		}

		// 缓存未命中时查询数据库
		if !roleFound {
			var user model.User
			if err := db.DB.Select("role").First(&user, uid).Error; err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur introuvable"})
				c.Abort()
				return
			}
			currentRole = user.Role

			roleCache.Store(uid, cachedRole{
				Role:      currentRole,
				ExpiresAt: time.Now().Add(roleCacheTTL),
			})

			if redisClient := service.GetRedisClient(); redisClient != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()

				key := service.RedisKey("auth", "user_role", strconv.FormatUint(uint64(uid), 10))
				_ = redisClient.Set(ctx, key, string(currentRole), roleCacheTTL).Err()
			}
		}

		// 以最新角色覆盖令牌里的角色
		c.Set("role", string(currentRole))
		c.Next()
	}
}

// AdminCheck 仅放行管理员。
func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("role")
		role, ok := value.(string)
		if !exist || !ok || consts.Role(role) != consts.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
