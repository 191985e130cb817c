//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Hamziss/agence-immobliere/internal/handler"
	adminhandler "github.com/Hamziss/agence-immobliere/internal/handler/admin"
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/router"
	"github.com/Hamziss/agence-immobliere/internal/service"
	"github.com/Hamziss/agence-immobliere/internal/usecase/admin"
	"github.com/Hamziss/agence-immobliere/internal/usecase/app"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		repository.NewUserRepository,
		repository.NewPropertyRepository,
		repository.NewImageRepository,
		service.NewAuthService,
		service.NewUploadService,
		service.NewStorageService,
		app.NewAuthUseCase,
		app.NewPropertyUseCase,
		app.NewImageUseCase,
		admin.NewPropertyManageUseCase,
		admin.NewStatUseCase,
		handler.NewAuthHandler,
		handler.NewPropertyHandler,
		handler.NewImageHandler,
		adminhandler.NewPropertyManageHandler,
		adminhandler.NewStatHandler,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
