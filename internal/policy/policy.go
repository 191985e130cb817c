// Package policy 提供房源访问控制的纯判定函数。
//
// 所有函数均无副作用、无 I/O：给定请求者与目标房源即可得到允许/拒绝。
// 未认证请求者用 nil *Actor 表示。
package policy

import (
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
)

// Actor 当前请求者。匿名请求者用 nil 指针表示。
type Actor struct {
	ID   uint
	Role consts.Role
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == consts.RoleAdmin
}

func (a *Actor) IsAgent() bool {
	return a != nil && a.Role == consts.RoleAgent
}

// IsGuestOrAnonymous 游客或未认证请求者只能看到已发布的房源。
func (a *Actor) IsGuestOrAnonymous() bool {
	return a == nil || a.Role == consts.RoleGuest
}

// CanListAny 任何人都可以请求列表，可见性由查询过滤保证。
func CanListAny(_ *Actor) bool {
	return true
}

// CanView 已发布的房源任何人可见；未发布的仅限所有者或管理员。
func CanView(actor *Actor, p *model.Property) bool {
	if p.IsPublished {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == p.UserID
}

// CanCreate 仅管理员与经纪人可以创建房源。
func CanCreate(actor *Actor) bool {
	return actor.IsAdmin() || actor.IsAgent()
}

// CanUpdate 管理员可修改任意房源，其他人仅限自己的。发布状态不影响该判定。
func CanUpdate(actor *Actor, p *model.Property) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == p.UserID
}

// CanDelete 与 CanUpdate 同规则（软删除）。
func CanDelete(actor *Actor, p *model.Property) bool {
	return CanUpdate(actor, p)
}

// CanRestore 仅管理员可恢复，所有者无例外。
func CanRestore(actor *Actor, _ *model.Property) bool {
	return actor.IsAdmin()
}

// CanForceDelete 仅管理员可物理删除，所有者无例外。
func CanForceDelete(actor *Actor, _ *model.Property) bool {
	return actor.IsAdmin()
}
