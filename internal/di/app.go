package di

import (
	"github.com/Hamziss/agence-immobliere/internal/router"
	"github.com/Hamziss/agence-immobliere/internal/service"
)

type Application struct {
	Router  *router.Router
	Storage *service.StorageService
}

func NewApplication(r *router.Router, storage *service.StorageService) *Application {
	return &Application{
		Router:  r,
		Storage: storage,
	}
}
