package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通 JSON 请求体大小。
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 图片上传路由走 UploadBodyLimitMiddleware
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/images/properties/") {
			c.Next()
			return
		}

		// 普通请求体固定 2MB 上限
		maxBytes := int64(2) * 1024 * 1024
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制图片上传接口的请求体大小。
// 上限为 单文件上限 × 单次最大文件数，外加表单开销的余量。
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.Get().Upload
		maxSizeMB := cfg.MaxFileSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 5
		}
		maxFiles := cfg.MaxFilesUpload
		if maxFiles <= 0 {
			maxFiles = 10
		}
		maxBytes := int64(maxSizeMB)*1024*1024*int64(maxFiles) + 1024*1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("La taille totale ne peut pas dépasser %dMB", maxBytes/(1024*1024))})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
