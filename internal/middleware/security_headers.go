package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders 添加安全相关的 HTTP 响应头
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 防止浏览器猜测内容类型
		c.Header("X-Content-Type-Options", "nosniff")

		// 防止点击劫持
		c.Header("X-Frame-Options", "DENY")

		// API 与静态图片服务，默认只允许同源资源
		c.Header("Content-Security-Policy", "default-src 'self'; img-src 'self' data: blob:;")

		c.Next()
	}
}
