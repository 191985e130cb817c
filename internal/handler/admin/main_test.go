package admin

import (
	"testing"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/service"
	"github.com/Hamziss/agence-immobliere/internal/testutils"
	adminuc "github.com/Hamziss/agence-immobliere/internal/usecase/admin"
	"github.com/gin-gonic/gin"
)

type testHandlers struct {
	manage *PropertyManageHandler
	stat   *StatHandler
}

func setupHandlers(t *testing.T) *testHandlers {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)
	config.InitConfig(t.TempDir())

	propertyStore := repository.NewPropertyRepository(db.DB)
	imageStore := repository.NewImageRepository(db.DB)

	return &testHandlers{
		manage: NewPropertyManageHandler(adminuc.NewPropertyManageUseCase(propertyStore, imageStore, service.NewStorageService())),
		stat:   NewStatHandler(adminuc.NewStatUseCase(propertyStore)),
	}
}

func asUser(u *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("id", u.ID)
		c.Set("name", u.Name)
		c.Set("role", string(u.Role))
		c.Next()
	}
}

func seedUser(t *testing.T, name string, role consts.Role) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: name + "@example.com", Password: "x", Role: role}
	if err := db.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProperty(t *testing.T, owner *model.User, published bool) *model.Property {
	t.Helper()
	p := &model.Property{
		UserID:      owner.ID,
		Title:       "Bien de test",
		Type:        consts.TypeVilla,
		Surface:     200,
		Price:       30000000,
		City:        "Alger",
		Status:      consts.StatusDisponible,
		IsPublished: published,
	}
	if err := db.DB.Create(p).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}
