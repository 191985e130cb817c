package admin

import (
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/service"
)

type PropertyManageUseCase struct {
	propertyStore  repository.PropertyStore
	imageStore     repository.ImageStore
	storageService *service.StorageService
}

type StatUseCase struct {
	propertyStore repository.PropertyStore
}

// AdminUseCase 面向管理请求的用例集合。
type AdminUseCase struct {
	PropertyManage *PropertyManageUseCase
	Stat           *StatUseCase
}

func NewPropertyManageUseCase(
	propertyStore repository.PropertyStore,
	imageStore repository.ImageStore,
	storageService *service.StorageService,
) *PropertyManageUseCase {
	return &PropertyManageUseCase{
		propertyStore:  propertyStore,
		imageStore:     imageStore,
		storageService: storageService,
	}
}

func NewStatUseCase(propertyStore repository.PropertyStore) *StatUseCase {
	return &StatUseCase{propertyStore: propertyStore}
}

func NewAdminUseCase(
	propertyManageUseCase *PropertyManageUseCase,
	statUseCase *StatUseCase,
) *AdminUseCase {
	return &AdminUseCase{
		PropertyManage: propertyManageUseCase,
		Stat:           statUseCase,
	}
}
