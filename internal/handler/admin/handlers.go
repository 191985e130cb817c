package admin

import (
	"github.com/Hamziss/agence-immobliere/internal/usecase/admin"
)

type PropertyManageHandler struct {
	propertyManageUseCase *admin.PropertyManageUseCase
}

type StatHandler struct {
	statUseCase *admin.StatUseCase
}

func NewPropertyManageHandler(propertyManageUseCase *admin.PropertyManageUseCase) *PropertyManageHandler {
	return &PropertyManageHandler{propertyManageUseCase: propertyManageUseCase}
}

func NewStatHandler(statUseCase *admin.StatUseCase) *StatHandler {
	return &StatHandler{statUseCase: statUseCase}
}
