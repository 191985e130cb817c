package app

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

// setupUseCases 初始化内存数据库并构建用例对象。
func setupUseCases(t *testing.T) *AppUseCase {
	t.Helper()
	testutils.SetupDB(t)

	userStore := repository.NewUserRepository(db.DB)
	propertyStore := repository.NewPropertyRepository(db.DB)
	imageStore := repository.NewImageRepository(db.DB)

	authService := service.NewAuthService(userStore)
	uploadService := service.NewUploadService()
	storageService := service.NewStorageService()

	return NewAppUseCase(
		NewAuthUseCase(authService, userStore),
		NewPropertyUseCase(propertyStore),
		NewImageUseCase(imageStore, propertyStore, uploadService, storageService),
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

func seedProperty(t *testing.T, owner *model.User, published bool) *model.Property {
	t.Helper()
	rooms := 3
	p := &model.Property{
		UserID:      owner.ID,
		Title:       "Appartement 3 pièces - 85m² à Alger",
		Type:        consts.TypeAppartement,
		Rooms:       &rooms,
		Surface:     85,
		Price:       12000000,
		City:        "Alger",
		Status:      consts.StatusDisponible,
		IsPublished: published,
	}
	if err := db.DB.Create(p).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}
