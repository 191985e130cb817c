package handler

import (
	"testing"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"github.com/Hamziss/agence-immobliere/internal/service"
	"github.com/Hamziss/agence-immobliere/internal/testutils"
	"github.com/Hamziss/agence-immobliere/internal/usecase/app"
	"github.com/gin-gonic/gin"
)

type testHandlers struct {
	auth     *AuthHandler
	property *PropertyHandler
	image    *ImageHandler
}

// setupHandlers 构建带内存数据库的完整 handler 栈。
func setupHandlers(t *testing.T) *testHandlers {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)
	config.InitConfig(t.TempDir())

	userStore := repository.NewUserRepository(db.DB)
	propertyStore := repository.NewPropertyRepository(db.DB)
	imageStore := repository.NewImageRepository(db.DB)

	authUseCase := app.NewAuthUseCase(service.NewAuthService(userStore), userStore)
	propertyUseCase := app.NewPropertyUseCase(propertyStore)
	imageUseCase := app.NewImageUseCase(imageStore, propertyStore, service.NewUploadService(), service.NewStorageService())

	return &testHandlers{
		auth:     NewAuthHandler(authUseCase),
		property: NewPropertyHandler(propertyUseCase),
		image:    NewImageHandler(imageUseCase),
	}
}

// asUser 模拟 JWT 中间件写入的上下文。
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
