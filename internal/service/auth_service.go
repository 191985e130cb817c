package service

import (
	"errors"
	"log"
	"time"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userStore repository.UserStore
}

// Register 注册新用户。默认角色为 guest。
// 开放注册只允许 agent 与 guest，管理员账号只能通过种子配置创建。
func (s *AuthService) Register(name, email, password string, role consts.Role) (*model.User, error) {
	if role == "" {
		role = consts.RoleGuest
	}
	if !consts.ValidRole(role) || role == consts.RoleAdmin {
		return nil, common.NewValidationError("Rôle invalide")
	}
	if name == "" {
		return nil, common.NewValidationError("Le nom est requis")
	}
	if !utils.ValidateEmail(email) {
		return nil, common.NewValidationError("Adresse email invalide")
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	exists, err := s.userStore.EmailExists(email)
	if err != nil {
		log.Printf("Check email exists error: %v\n", err)
		return nil, common.NewInternalError("Une erreur est survenue, veuillez réessayer")
	}
	if exists {
		return nil, common.NewConflictError("Cette adresse email est déjà utilisée")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Hash password error: %v\n", err)
		return nil, common.NewInternalError("Une erreur est survenue, veuillez réessayer")
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userStore.Create(user); err != nil {
		log.Printf("Create user error: %v\n", err)
		return nil, common.NewInternalError("Une erreur est survenue, veuillez réessayer")
	}

	return user, nil
}

// Login 校验凭据并签发登录令牌。
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分“账号不存在”与“密码错误”，避免枚举邮箱。
			return "", nil, common.NewUnauthorizedError("Les identifiants sont incorrects")
		}
		log.Printf("Find user error: %v\n", err)
		return "", nil, common.NewInternalError("Connexion impossible, veuillez réessayer")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, common.NewUnauthorizedError("Les identifiants sont incorrects")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Name, user.Role, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		log.Printf("Generate token error: %v\n", err)
		return "", nil, common.NewInternalError("Connexion impossible, veuillez réessayer")
	}

	return token, user, nil
}
