package postgresadapter

import (
	"time"

	"janus/contexts/system/registry/domain/entities"
	"janus/contexts/system/registry/domain/valueobjects"
)

type applicationModel struct {
	ID          int32     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	DisplayName *string   `gorm:"column:display_name"`
	Description *string   `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active"`
	SubDomain   string    `gorm:"column:sub_domain"`
	HomePageURL *string   `gorm:"column:home_page_url"`
	LogoURL     *string   `gorm:"column:logo_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string { return "applications" }

func applicationModelFromEntity(application entities.Application) applicationModel {
	return applicationModel{
		ID:          application.ID,
		Name:        application.Name,
		DisplayName: application.DisplayName,
		Description: application.Description,
		IsActive:    application.IsActive,
		SubDomain:   application.SubDomain,
		HomePageURL: application.HomePageURL,
		LogoURL:     application.LogoURL,
	}
}

func (m applicationModel) toEntity() entities.Application {
	return entities.Application{
		ID:          m.ID,
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Description: m.Description,
		IsActive:    m.IsActive,
		SubDomain:   m.SubDomain,
		HomePageURL: m.HomePageURL,
		LogoURL:     m.LogoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type serviceModel struct {
	ID          int32     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	DisplayName *string   `gorm:"column:display_name"`
	Description *string   `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active"`
	SubDomain   string    `gorm:"column:sub_domain"`
	HomePageURL *string   `gorm:"column:home_page_url"`
	LogoURL     *string   `gorm:"column:logo_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func serviceModelFromEntity(service entities.Service) serviceModel {
	return serviceModel{
		ID:          service.ID,
		Name:        service.Name,
		DisplayName: service.DisplayName,
		Description: service.Description,
		IsActive:    service.IsActive,
		SubDomain:   service.SubDomain,
		HomePageURL: service.HomePageURL,
		LogoURL:     service.LogoURL,
	}
}

func (m serviceModel) toEntity() entities.Service {
	return entities.Service{
		ID:          m.ID,
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Description: m.Description,
		IsActive:    m.IsActive,
		SubDomain:   m.SubDomain,
		HomePageURL: m.HomePageURL,
		LogoURL:     m.LogoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type applicationKeyModel struct {
	ID            int32     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	ApplicationID int32     `gorm:"column:application_id"`
	PublicKey     string    `gorm:"column:public_key"`
	Algorithm     string    `gorm:"column:algorithm"`
	IsDefault     bool      `gorm:"column:is_default"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (applicationKeyModel) TableName() string { return "application_keys" }

func (m applicationKeyModel) toEntity() entities.Key {
	return entities.Key{
		ID:        m.ID,
		Name:      m.Name,
		PublicKey: m.PublicKey,
		Algorithm: valueobjects.PublicKeyAlgorithm(m.Algorithm),
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type serviceKeyModel struct {
	ID        int32     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	ServiceID int32     `gorm:"column:service_id"`
	PublicKey string    `gorm:"column:public_key"`
	Algorithm string    `gorm:"column:algorithm"`
	IsDefault bool      `gorm:"column:is_default"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (serviceKeyModel) TableName() string { return "service_keys" }

func (m serviceKeyModel) toEntity() entities.Key {
	return entities.Key{
		ID:        m.ID,
		Name:      m.Name,
		PublicKey: m.PublicKey,
		Algorithm: valueobjects.PublicKeyAlgorithm(m.Algorithm),
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type applicationConfigurationModel struct {
	ApplicationID int32     `gorm:"column:application_id;primaryKey"`
	ConfigName    string    `gorm:"column:config_name;primaryKey"`
	ConfigValue   string    `gorm:"column:config_value"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (applicationConfigurationModel) TableName() string { return "application_configurations" }

func (m applicationConfigurationModel) toEntity() entities.Configuration {
	return entities.Configuration{
		Name:      m.ConfigName,
		Value:     m.ConfigValue,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type serviceConfigurationModel struct {
	ServiceID   int32     `gorm:"column:service_id;primaryKey"`
	ConfigName  string    `gorm:"column:config_name;primaryKey"`
	ConfigValue string    `gorm:"column:config_value"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceConfigurationModel) TableName() string { return "service_configurations" }

func (m serviceConfigurationModel) toEntity() entities.Configuration {
	return entities.Configuration{
		Name:      m.ConfigName,
		Value:     m.ConfigValue,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type applicationRoleModel struct {
	ID            int32     `gorm:"column:id;primaryKey"`
	ApplicationID int32     `gorm:"column:application_id"`
	RoleName      string    `gorm:"column:role_name"`
	Description   *string   `gorm:"column:description"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (applicationRoleModel) TableName() string { return "application_roles" }

func (m applicationRoleModel) toEntity() entities.Role {
	return entities.Role{
		ID:          m.ID,
		Name:        m.RoleName,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type serviceRoleModel struct {
	ID          int32     `gorm:"column:id;primaryKey"`
	ServiceID   int32     `gorm:"column:service_id"`
	RoleName    string    `gorm:"column:role_name"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceRoleModel) TableName() string { return "service_roles" }

func (m serviceRoleModel) toEntity() entities.Role {
	return entities.Role{
		ID:          m.ID,
		Name:        m.RoleName,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
