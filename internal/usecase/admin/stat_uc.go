package admin

import (
	"log"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/policy"
	"github.com/Hamziss/agence-immobliere/internal/repository"
)

// Properties 返回房源统计。管理员看全量，经纪人只看自己的房源，游客无权访问。
func (c *StatUseCase) Properties(actor *policy.Actor) (*repository.PropertyStats, error) {
	if actor == nil || actor.IsGuestOrAnonymous() {
		return nil, common.NewForbiddenError("Accès réservé aux professionnels")
	}

	var userID *uint
	if !actor.IsAdmin() {
		id := actor.ID
		userID = &id
	}

	stats, err := c.propertyStore.Stats(userID)
	if err != nil {
		log.Printf("Property stats error: %v\n", err)
		return nil, common.NewInternalError("Impossible de calculer les statistiques")
	}

	return stats, nil
}
