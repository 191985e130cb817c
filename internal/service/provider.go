package service

import (
	"github.com/Hamziss/agence-immobliere/internal/repository"
)

func NewAuthService(userStore repository.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

func NewUploadService() *UploadService {
	return &UploadService{}
}

func NewStorageService() *StorageService {
	return &StorageService{}
}
