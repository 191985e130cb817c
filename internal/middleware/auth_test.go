package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/testutils"
	"github.com/Hamziss/agence-immobliere/internal/utils"
	"github.com/gin-gonic/gin"
)

func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutils.SetupDB(t)
	config.InitConfig(t.TempDir())
}

func issueToken(t *testing.T, u *model.User) string {
	t.Helper()
	token, err := utils.GenerateLoginToken(u.ID, u.Name, u.Role, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	return token
}

func seedUser(t *testing.T, name string, role consts.Role) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: name + "@example.com", Password: "x", Role: role}
	if err := db.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// 测试内容：验证强制认证中间件的缺失、格式错误与合法令牌场景。
func TestJWTAuth(t *testing.T) {
	setupAuthTest(t)
	agent := seedUser(t, "agent", consts.RoleAgent)
	token := issueToken(t, agent)

	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		id, _ := c.Get("id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})

	// 无令牌
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}

	// 格式错误
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}

	// 合法令牌
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证可选认证：无令牌与坏令牌都按匿名放行，好令牌写入身份。
func TestOptionalJWTAuth(t *testing.T) {
	setupAuthTest(t)
	agent := seedUser(t, "agent", consts.RoleAgent)
	token := issueToken(t, agent)

	r := gin.New()
	r.GET("/maybe", OptionalJWTAuth(), func(c *gin.Context) {
		if _, ok := c.Get("id"); ok {
			c.JSON(http.StatusOK, gin.H{"auth": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"auth": false})
	})

	// 无令牌：匿名放行
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/maybe", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"auth":false}` {
		t.Fatalf("期望匿名放行，实际为 %d %s", w.Code, w.Body.String())
	}

	// 坏令牌：同样匿名放行
	req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer invalide")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != `{"auth":false}` {
		t.Fatalf("期望匿名放行，实际为 %d %s", w.Code, w.Body.String())
	}

	// 好令牌：识别身份
	req = httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != `{"auth":true}` {
		t.Fatalf("期望识别身份，实际为 %d %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证管理员检查：admin 放行，agent 拒绝。
func TestAdminCheck(t *testing.T) {
	setupAuthTest(t)

	r := gin.New()
	r.GET("/admin", func(c *gin.Context) { c.Set("role", "admin"); c.Next() }, AdminCheck(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/agent", func(c *gin.Context) { c.Set("role", "agent"); c.Next() }, AdminCheck(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/agent", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
}

// 测试内容：验证角色检查拒绝已不存在的用户并刷新角色。
func TestUserRoleCheck(t *testing.T) {
	setupAuthTest(t)
	agent := seedUser(t, "agent", consts.RoleAgent)
	ClearUserRoleCache(agent.ID)

	r := gin.New()
	r.GET("/check", func(c *gin.Context) { c.Set("id", agent.ID); c.Set("role", "admin"); c.Next() }, UserRoleCheck(), func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})

	// 角色以数据库为准：令牌里的 admin 被刷新回 agent
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"role":"agent"}` {
		t.Fatalf("期望角色刷新为 agent，实际为 %s", w.Body.String())
	}

	// 用户被删除后拒绝（先清缓存再请求）
	ClearUserRoleCache(agent.ID)
	if err := db.DB.Unscoped().Delete(&model.User{}, agent.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d body=%s", w.Code, w.Body.String())
	}
}
