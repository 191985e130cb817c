package middleware

import "github.com/gin-gonic/gin"

// StaticCacheMiddleware 为静态图片添加 Cache-Control 头。
// 图片文件名含 UUID，内容不会原地变更，可以放心长缓存。
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=86400")
		c.Next()
	}
}
