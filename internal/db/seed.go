package db

import (
	"errors"
	"log"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin 确保存在至少一个管理员账号。
// 数据库中没有管理员且配置了种子账号时创建；否则跳过。
func EnsureAdmin() {
	cfg := config.Get()

	var count int64
	if err := DB.Model(&model.User{}).Where("role = ?", consts.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("⚠️ 管理员检查失败: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Println("⚠️ 尚无管理员账号，且未配置 admin.email / admin.password，跳过种子创建")
		return
	}

	// 邮箱已被占用时不覆盖已有账号
	var existing model.User
	err := DB.Where("email = ?", cfg.Admin.Email).First(&existing).Error
	if err == nil {
		log.Printf("⚠️ 种子管理员邮箱 %s 已被占用，跳过创建", cfg.Admin.Email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ 管理员检查失败: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ 种子管理员密码加密失败: %v", err)
		return
	}

	admin := model.User{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: string(hashed),
		Role:     consts.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("❌ 种子管理员创建失败: %v", err)
		return
	}
	log.Printf("✅ 已创建种子管理员账号: %s", cfg.Admin.Email)
}
