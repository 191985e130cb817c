package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/di"
	"github.com/Hamziss/agence-immobliere/internal/middleware"
	"github.com/Hamziss/agence-immobliere/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()
	db.EnsureAdmin()

	uploadPath := config.Get().Upload.Path
	if err := checkSecurePath(uploadPath); err != nil {
		log.Fatalf("❌ 不安全的上传目录: %v\n", err)
	}
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("无法创建上传目录: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()

	app, err := di.InitializeApplication(db.DB)
	if err != nil {
		log.Fatalf("❌ 初始化失败: %v\n", err)
	}
	app.Router.Init(r)

	// 带缓存控制的静态图片服务
	r.Group(config.Get().Upload.URLPrefix, middleware.StaticCacheMiddleware()).
		StaticFS("", gin.Dir(uploadPath, false))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	log.Printf("%s v%s\n", consts.ApplicationName, consts.ApplicationVersion)

	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（5 秒超时）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}

	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ 关闭 Redis 连接失败: %v\n", err)
	}

	log.Println("✅ 服务已关闭")
}

// checkSecurePath 拒绝把上传目录指向可疑位置。
func checkSecurePath(path string) error {
	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == "/" || strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("不安全的上传目录: %s", path)
	}
	return nil
}
