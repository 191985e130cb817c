package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/utils"
	"github.com/gin-gonic/gin"
)

// 测试内容：验证注册、登录与令牌的端到端流程。
func TestRegisterLoginFlow(t *testing.T) {
	h := setupHandlers(t)

	r := gin.New()
	r.POST("/api/register", h.auth.Register)
	r.POST("/api/login", h.auth.Login)

	body, _ := json.Marshal(gin.H{
		"name":     "Karim",
		"email":    "karim@example.com",
		"password": "motdepasse1",
		"role":     "agent",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}

	// 响应中不能出现密码散列
	if bytes.Contains(w.Body.Bytes(), []byte("password")) {
		t.Fatalf("注册响应不应当包含密码字段: %s", w.Body.String())
	}

	loginBody, _ := json.Marshal(gin.H{"email": "karim@example.com", "password": "motdepasse1"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(loginBody)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	claims, err := utils.ParseLoginToken(resp.Token)
	if err != nil {
		t.Fatalf("令牌解析失败: %v", err)
	}
	if claims.Name != "Karim" {
		t.Fatalf("期望令牌载荷 Karim，实际为 %q", claims.Name)
	}

	// 错误密码
	badBody, _ := json.Marshal(gin.H{"email": "karim@example.com", "password": "mauvais1"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(badBody)))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证重复邮箱注册返回 409。
func TestRegisterDuplicate(t *testing.T) {
	h := setupHandlers(t)

	r := gin.New()
	r.POST("/api/register", h.auth.Register)

	body, _ := json.Marshal(gin.H{"name": "Karim", "email": "karim@example.com", "password": "motdepasse1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body)))
	if w.Code != http.StatusConflict {
		t.Fatalf("期望 409，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证开放注册拒绝 admin 角色，管理员只能来自种子配置。
func TestRegisterRejectsAdminRole(t *testing.T) {
	h := setupHandlers(t)

	r := gin.New()
	r.POST("/api/register", h.auth.Register)

	body, _ := json.Marshal(gin.H{
		"name":     "Intrus",
		"email":    "intrus@example.com",
		"password": "motdepasse1",
		"role":     "admin",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d body=%s", w.Code, w.Body.String())
	}

	// 账号不得被创建
	var count int64
	if err := db.DB.Model(&model.User{}).Where("email = ?", "intrus@example.com").Count(&count).Error; err != nil {
		t.Fatalf("统计用户失败: %v", err)
	}
	if count != 0 {
		t.Fatalf("期望 0 个账号，实际为 %d", count)
	}
}

// 测试内容：验证 Me 接口返回当前用户。
func TestMe(t *testing.T) {
	h := setupHandlers(t)
	agent := seedUser(t, "agent", consts.RoleAgent)

	r := gin.New()
	r.GET("/api/me", asUser(agent), h.auth.Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.User.ID != agent.ID {
		t.Fatalf("期望用户 ID %d，实际为 %d", agent.ID, resp.User.ID)
	}
}
