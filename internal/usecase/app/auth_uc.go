package app

import (
	"errors"
	"log"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"gorm.io/gorm"
)

// Register 注册新用户，角色缺省为 guest。
func (c *AuthUseCase) Register(name, email, password string, role consts.Role) (*model.User, error) {
	return c.authService.Register(name, email, password, role)
}

// Login 校验凭证并签发登录令牌。
func (c *AuthUseCase) Login(email, password string) (string, *model.User, error) {
	return c.authService.Login(email, password)
}

// Me 返回当前登录用户的资料。
func (c *AuthUseCase) Me(userID uint) (*model.User, error) {
	user, err := c.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("Utilisateur introuvable")
		}
		log.Printf("Find user error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer l'utilisateur")
	}
	return user, nil
}
