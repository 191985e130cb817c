package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/db"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/gin-gonic/gin"
)

// 测试内容：验证恢复接口的管理员成功路径与 404 场景。
func TestRestoreEndpoint(t *testing.T) {
	h := setupHandlers(t)
	adminUser := seedUser(t, "admin", consts.RoleAdmin)
	agent := seedUser(t, "agent", consts.RoleAgent)
	property := seedProperty(t, agent, true)

	if err := db.DB.Delete(&model.Property{}, property.ID).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	r := gin.New()
	r.POST("/api/admin/properties/:id/restore", asUser(adminUser), h.manage.Restore)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/properties/%d/restore", property.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	// 已恢复，重复恢复报 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/properties/%d/restore", property.ID), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证物理删除接口。
func TestForceDeleteEndpoint(t *testing.T) {
	h := setupHandlers(t)
	adminUser := seedUser(t, "admin", consts.RoleAdmin)
	agent := seedUser(t, "agent", consts.RoleAgent)
	property := seedProperty(t, agent, true)

	if err := db.DB.Delete(&model.Property{}, property.ID).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	r := gin.New()
	r.DELETE("/api/admin/properties/:id/force", asUser(adminUser), h.manage.ForceDelete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/properties/%d/force", property.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.DB.Unscoped().Model(&model.Property{}).Where("id = ?", property.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("物理删除后房源不应当存在")
	}
}

// 测试内容：验证回收站列表接口。
func TestListTrashedEndpoint(t *testing.T) {
	h := setupHandlers(t)
	adminUser := seedUser(t, "admin", consts.RoleAdmin)
	agent := seedUser(t, "agent", consts.RoleAgent)
	seedProperty(t, agent, true)
	trashed := seedProperty(t, agent, true)

	if err := db.DB.Delete(&model.Property{}, trashed.ID).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	r := gin.New()
	r.GET("/api/admin/properties/trashed", asUser(adminUser), h.manage.ListTrashed)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/properties/trashed", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []model.Property `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != trashed.ID {
		t.Fatalf("期望仅含被删除的房源，实际为 %+v", resp.Data)
	}
}

// 测试内容：验证统计接口按角色收敛范围。
func TestStatsEndpoint(t *testing.T) {
	h := setupHandlers(t)
	adminUser := seedUser(t, "admin", consts.RoleAdmin)
	agent := seedUser(t, "agent", consts.RoleAgent)
	guest := seedUser(t, "guest", consts.RoleGuest)
	seedProperty(t, agent, true)
	seedProperty(t, adminUser, false)

	r := gin.New()
	r.GET("/admin-stats", asUser(adminUser), h.stat.PropertyStats)
	r.GET("/agent-stats", asUser(agent), h.stat.PropertyStats)
	r.GET("/guest-stats", asUser(guest), h.stat.PropertyStats)

	var resp struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Data.Total != 2 {
		t.Fatalf("管理员期望总数 2，实际为 %d", resp.Data.Total)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/agent-stats", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Data.Total != 1 {
		t.Fatalf("经纪人期望总数 1，实际为 %d", resp.Data.Total)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guest-stats", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d body=%s", w.Code, w.Body.String())
	}
}
