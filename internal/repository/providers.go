package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User     UserStore
	Property PropertyStore
	Image    ImageStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPropertyRepository(db *gorm.DB) PropertyStore {
	return &PropertyRepository{db: db}
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func NewRepositories(user UserStore, property PropertyStore, image ImageStore) *Repositories {
	return &Repositories{
		User:     user,
		Property: property,
		Image:    image,
	}
}
