package admin

import (
	"testing"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/policy"
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/service"
	"github.com/Hamziss/agence-immobliere/internal/testutils"
)

func setupAdminUseCases(t *testing.T) *AdminUseCase {
	t.Helper()
	testutils.SetupDB(t)

	propertyStore := repository.NewPropertyRepository(db.DB)
	imageStore := repository.NewImageRepository(db.DB)
	storageService := service.NewStorageService()

	return NewAdminUseCase(
		NewPropertyManageUseCase(propertyStore, imageStore, storageService),
		NewStatUseCase(propertyStore),
	)
}

func seedUser(t *testing.T, name string, role consts.Role) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: name + "@example.com", Password: "x", Role: role}
	if err := db.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func actorFor(u *model.User) *policy.Actor {
	return &policy.Actor{ID: u.ID, Role: u.Role}
}

func seedProperty(t *testing.T, owner *model.User, typ consts.PropertyType, status consts.PropertyStatus, published bool) *model.Property {
	t.Helper()
	p := &model.Property{
		UserID:      owner.ID,
		Title:       "Bien de test",
		Type:        typ,
		Surface:     100,
		Price:       10000000,
		City:        "Alger",
		Status:      status,
		IsPublished: published,
	}
	if err := db.DB.Create(p).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}
