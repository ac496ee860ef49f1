package postgresadapter

import (
	"time"

	"janus/contexts/identity/directory/domain/entities"
	"janus/contexts/identity/directory/domain/valueobjects"
)

type userModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Username  *string   `gorm:"column:username"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:        m.ID,
		Username:  m.Username,
		Status:    valueobjects.UserStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type profileModel struct {
	UserID      int64      `gorm:"column:user_id;primaryKey"`
	FirstName   *string    `gorm:"column:first_name"`
	LastName    *string    `gorm:"column:last_name"`
	DisplayName *string    `gorm:"column:display_name"`
	Gender      string     `gorm:"column:gender"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth"`
	AvatarURL   *string    `gorm:"column:avatar_url"`
}

func (profileModel) TableName() string { return "user_profiles" }

func (m profileModel) toEntity() entities.Profile {
	return entities.Profile{
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DisplayName: m.DisplayName,
		Gender:      valueobjects.Gender(m.Gender),
		DateOfBirth: m.DateOfBirth,
		AvatarURL:   m.AvatarURL,
	}
}

type emailModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	UserID     int64     `gorm:"column:user_id"`
	EmailID    string    `gorm:"column:email_id"`
	IsPrimary  bool      `gorm:"column:is_primary"`
	IsVerified bool      `gorm:"column:is_verified"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (emailModel) TableName() string { return "user_emails" }

func (m emailModel) toEntity() entities.Email {
	return entities.Email{
		ID:         m.ID,
		UserID:     m.UserID,
		Address:    m.EmailID,
		IsPrimary:  m.IsPrimary,
		IsVerified: m.IsVerified,
		CreatedAt:  m.CreatedAt,
	}
}

type phoneModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id"`
	PhoneNumber string    `gorm:"column:phone_number"`
	IsPrimary   bool      `gorm:"column:is_primary"`
	IsVerified  bool      `gorm:"column:is_verified"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (phoneModel) TableName() string { return "user_phones" }

func (m phoneModel) toEntity() entities.Phone {
	return entities.Phone{
		ID:         m.ID,
		UserID:     m.UserID,
		Number:     m.PhoneNumber,
		IsPrimary:  m.IsPrimary,
		IsVerified: m.IsVerified,
		CreatedAt:  m.CreatedAt,
	}
}

type authIdentityModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id"`
	Provider    string    `gorm:"column:provider"`
	ProviderKey string    `gorm:"column:provider_key"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (authIdentityModel) TableName() string { return "user_auth_identities" }

func (m authIdentityModel) toEntity() entities.AuthIdentity {
	return entities.AuthIdentity{
		ID:          m.ID,
		UserID:      m.UserID,
		Provider:    valueobjects.AuthProvider(m.Provider),
		ProviderKey: m.ProviderKey,
		CreatedAt:   m.CreatedAt,
	}
}

type passwordModel struct {
	UserAuthIdentityID int64     `gorm:"column:user_auth_identity_id;primaryKey"`
	Hash               string    `gorm:"column:hash"`
	Algorithm          string    `gorm:"column:algorithm"`
	Version            int       `gorm:"column:version"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (passwordModel) TableName() string { return "user_passwords" }
