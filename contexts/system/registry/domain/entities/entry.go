package entities

import (
	"time"

	"janus/contexts/system/registry/domain/valueobjects"
)

// Application is a registered consumer-facing client of the platform. The
// aggregate carries its keys, configuration entries and roles as loaded for
// the catalog snapshot.
type Application struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"display_name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	SubDomain   string  `json:"sub_domain"`
	HomePageURL *string `json:"home_page_url,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Keys           []Key           `json:"keys,omitempty"`
	Configurations []Configuration `json:"configurations,omitempty"`
	Roles          []Role          `json:"roles,omitempty"`
}

// Service is a registered backend workload. Structurally services mirror
// applications but live in their own catalog.
type Service struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"display_name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	SubDomain   string  `json:"sub_domain"`
	HomePageURL *string `json:"home_page_url,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Keys           []Key           `json:"keys,omitempty"`
	Configurations []Configuration `json:"configurations,omitempty"`
	Roles          []Role          `json:"roles,omitempty"`
}

// Key is a named public key attached to an application or service.
type Key struct {
	ID        int32                           `json:"id"`
	Name      string                          `json:"name"`
	PublicKey string                          `json:"public_key"`
	Algorithm valueobjects.PublicKeyAlgorithm `json:"algorithm"`
	IsDefault bool                            `json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Configuration is one name/value entry scoped to its owner.
type Configuration struct {
	Name  string `json:"name"`
	Value string `json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role is a named role scoped to its owner; names are unique per owner.
type Role struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
