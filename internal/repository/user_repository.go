package repository

import "github.com/Hamziss/agence-immobliere/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	EmailExists(email string) (bool, error)
}
