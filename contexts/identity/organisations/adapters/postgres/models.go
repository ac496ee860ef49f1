package postgresadapter

import (
	"time"

	"janus/contexts/identity/organisations/domain/entities"
	"janus/contexts/identity/organisations/domain/valueobjects"
)

type organisationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (organisationModel) TableName() string { return "organisations" }

func (m organisationModel) toEntity() entities.Organisation {
	return entities.Organisation{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type memberModel struct {
	OrganisationID int64     `gorm:"column:organisation_id;primaryKey"`
	UserID         int64     `gorm:"column:user_id;primaryKey"`
	IsDefault      bool      `gorm:"column:is_default"`
	Role           string    `gorm:"column:role"`
	JoinedAt       time.Time `gorm:"column:joined_at"`
}

func (memberModel) TableName() string { return "organisation_members" }

func memberModelFromEntity(member entities.Member) memberModel {
	return memberModel{
		OrganisationID: member.OrganisationID,
		UserID:         member.UserID,
		IsDefault:      member.IsDefault,
		Role:           string(member.Role),
	}
}

func (m memberModel) toEntity() entities.Member {
	return entities.Member{
		OrganisationID: m.OrganisationID,
		UserID:         m.UserID,
		IsDefault:      m.IsDefault,
		Role:           valueobjects.MemberRole(m.Role),
		JoinedAt:       m.JoinedAt,
	}
}
