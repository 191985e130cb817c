package app

import (
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/service"
)

type PropertyUseCase struct {
	propertyStore repository.PropertyStore
}

type ImageUseCase struct {
	imageStore     repository.ImageStore
	propertyStore  repository.PropertyStore
	uploadService  *service.UploadService
	storageService *service.StorageService
}

type AuthUseCase struct {
	authService *service.AuthService
	userStore   repository.UserStore
}

// AppUseCase 面向普通请求的用例集合。
type AppUseCase struct {
	Auth     *AuthUseCase
	Property *PropertyUseCase
	Image    *ImageUseCase
}

func NewPropertyUseCase(propertyStore repository.PropertyStore) *PropertyUseCase {
	return &PropertyUseCase{propertyStore: propertyStore}
}

func NewImageUseCase(
	imageStore repository.ImageStore,
	propertyStore repository.PropertyStore,
	uploadService *service.UploadService,
	storageService *service.StorageService,
) *ImageUseCase {
	return &ImageUseCase{
		imageStore:     imageStore,
		propertyStore:  propertyStore,
		uploadService:  uploadService,
		storageService: storageService,
	}
}

func NewAuthUseCase(authService *service.AuthService, userStore repository.UserStore) *AuthUseCase {
	return &AuthUseCase{
		authService: authService,
		userStore:   userStore,
	}
}

func NewAppUseCase(
	authUseCase *AuthUseCase,
	propertyUseCase *PropertyUseCase,
	imageUseCase *ImageUseCase,
) *AppUseCase {
	return &AppUseCase{
		Auth:     authUseCase,
		Property: propertyUseCase,
		Image:    imageUseCase,
	}
}
