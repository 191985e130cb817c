package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// 测试内容：验证使用 sqlite 临时文件初始化数据库并创建核心表。
func TestInitDB_SQLiteTempFile(t *testing.T) {
	tmp := t.TempDir()
	cfgDir := filepath.Join(tmp, "cfg")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("创建配置目录失败: %v", err)
	}

	dbFile := filepath.Join(tmp, "db", "test.db")
	t.Setenv("AGENCE_IMMO_SERVER_MODE", "debug")
	t.Setenv("AGENCE_IMMO_DATABASE_TYPE", "sqlite")
	t.Setenv("AGENCE_IMMO_DATABASE_FILENAME", dbFile)

	config.InitConfig(cfgDir)
	InitDB()

	if DB == nil {
		t.Fatal("期望 DB 已初始化")
	}
	if !DB.Migrator().HasTable(&model.User{}) {
		t.Fatal("期望 users 表存在")
	}
	if !DB.Migrator().HasTable(&model.Property{}) {
		t.Fatal("期望 properties 表存在")
	}
	if !DB.Migrator().HasTable(&model.Image{}) {
		t.Fatal("期望 images 表存在")
	}

	sqlDB, err := DB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

// 测试内容：验证种子管理员的创建与幂等性。
func TestEnsureAdmin(t *testing.T) {
	tmp := t.TempDir()
	dbFile := filepath.Join(tmp, "db", "seed.db")
	t.Setenv("AGENCE_IMMO_SERVER_MODE", "debug")
	t.Setenv("AGENCE_IMMO_DATABASE_TYPE", "sqlite")
	t.Setenv("AGENCE_IMMO_DATABASE_FILENAME", dbFile)
	t.Setenv("AGENCE_IMMO_ADMIN_EMAIL", "admin@agence.dz")
	t.Setenv("AGENCE_IMMO_ADMIN_PASSWORD", "motdepasse")

	config.InitConfig(filepath.Join(tmp, "cfg"))
	InitDB()
	t.Cleanup(func() {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	EnsureAdmin()

	var admin model.User
	if err := DB.Where("email = ?", "admin@agence.dz").First(&admin).Error; err != nil {
		t.Fatalf("期望种子管理员已创建: %v", err)
	}
	if admin.Role != consts.RoleAdmin {
		t.Fatalf("期望角色 admin，实际为 %s", admin.Role)
	}
	// 密码必须以哈希形式存储
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("motdepasse")); err != nil {
		t.Fatalf("期望密码为 bcrypt 哈希: %v", err)
	}

	// 再跑一次不应重复创建
	EnsureAdmin()
	var count int64
	if err := DB.Model(&model.User{}).Where("role = ?", consts.RoleAdmin).Count(&count).Error; err != nil {
		t.Fatalf("统计管理员失败: %v", err)
	}
	if count != 1 {
		t.Fatalf("期望管理员数量 1，实际为 %d", count)
	}
}
