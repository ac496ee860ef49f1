package postgresadapter

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"janus/contexts/system/registry/domain/entities"
	domainerrors "janus/contexts/system/registry/domain/errors"
	"janus/internal/shared/apperrors"
	"janus/internal/shared/storage"
)

var constraintErrors = map[string]*apperrors.Error{
	"applications_name_unique":                       domainerrors.ErrApplicationNameConflict,
	"services_name_unique":                           domainerrors.ErrServiceNameConflict,
	"application_roles_application_role_unique":      domainerrors.ErrApplicationRoleConflict,
	"service_roles_service_role_unique":              domainerrors.ErrServiceRoleConflict,
	"application_keys_application_id_fkey":           domainerrors.ErrApplicationNotFound,
	"application_roles_application_id_fkey":          domainerrors.ErrApplicationNotFound,
	"application_configurations_application_id_fkey": domainerrors.ErrApplicationNotFound,
	"service_keys_service_id_fkey":                   domainerrors.ErrServiceNotFound,
	"service_roles_service_id_fkey":                  domainerrors.ErrServiceNotFound,
	"service_configurations_service_id_fkey":         domainerrors.ErrServiceNotFound,
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) translate(err error) error {
	translated := storage.Translate(err, constraintErrors)
	if apperrors.CodeOf(translated) == apperrors.CodeInternal {
		r.logger.Error("unclassified storage failure",
			"module", "system/registry",
			"layer", "adapters/postgres",
			"error", err.Error(),
		)
	}
	return translated
}

// LoadApplications fetches the whole application catalog in four queries and
// assembles the aggregates in memory.
func (r *Repository) LoadApplications(ctx context.Context) ([]entities.Application, error) {
	var rows []applicationModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, r.translate(err)
	}

	var keyRows []applicationKeyModel
	if err := r.db.WithContext(ctx).Order("id").Find(&keyRows).Error; err != nil {
		return nil, r.translate(err)
	}
	var configRows []applicationConfigurationModel
	if err := r.db.WithContext(ctx).Order("config_name").Find(&configRows).Error; err != nil {
		return nil, r.translate(err)
	}
	var roleRows []applicationRoleModel
	if err := r.db.WithContext(ctx).Order("id").Find(&roleRows).Error; err != nil {
		return nil, r.translate(err)
	}

	keys := make(map[int32][]entities.Key)
	for _, row := range keyRows {
		keys[row.ApplicationID] = append(keys[row.ApplicationID], row.toEntity())
	}
	configurations := make(map[int32][]entities.Configuration)
	for _, row := range configRows {
		configurations[row.ApplicationID] = append(configurations[row.ApplicationID], row.toEntity())
	}
	roles := make(map[int32][]entities.Role)
	for _, row := range roleRows {
		roles[row.ApplicationID] = append(roles[row.ApplicationID], row.toEntity())
	}

	applications := make([]entities.Application, 0, len(rows))
	for _, row := range rows {
		application := row.toEntity()
		application.Keys = keys[row.ID]
		application.Configurations = configurations[row.ID]
		application.Roles = roles[row.ID]
		applications = append(applications, application)
	}
	return applications, nil
}

// LoadServices mirrors LoadApplications for the service catalog.
func (r *Repository) LoadServices(ctx context.Context) ([]entities.Service, error) {
	var rows []serviceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, r.translate(err)
	}

	var keyRows []serviceKeyModel
	if err := r.db.WithContext(ctx).Order("id").Find(&keyRows).Error; err != nil {
		return nil, r.translate(err)
	}
	var configRows []serviceConfigurationModel
	if err := r.db.WithContext(ctx).Order("config_name").Find(&configRows).Error; err != nil {
		return nil, r.translate(err)
	}
	var roleRows []serviceRoleModel
	if err := r.db.WithContext(ctx).Order("id").Find(&roleRows).Error; err != nil {
		return nil, r.translate(err)
	}

	keys := make(map[int32][]entities.Key)
	for _, row := range keyRows {
		keys[row.ServiceID] = append(keys[row.ServiceID], row.toEntity())
	}
	configurations := make(map[int32][]entities.Configuration)
	for _, row := range configRows {
		configurations[row.ServiceID] = append(configurations[row.ServiceID], row.toEntity())
	}
	roles := make(map[int32][]entities.Role)
	for _, row := range roleRows {
		roles[row.ServiceID] = append(roles[row.ServiceID], row.toEntity())
	}

	services := make([]entities.Service, 0, len(rows))
	for _, row := range rows {
		service := row.toEntity()
		service.Keys = keys[row.ID]
		service.Configurations = configurations[row.ID]
		service.Roles = roles[row.ID]
		services = append(services, service)
	}
	return services, nil
}

func (r *Repository) CreateApplication(ctx context.Context, application entities.Application) (entities.Application, error) {
	row := applicationModelFromEntity(application)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Application{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateApplication(ctx context.Context, application entities.Application) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("id = ?", application.ID).
		Updates(descriptorColumns(
			application.Name, application.DisplayName, application.Description,
			application.IsActive, application.SubDomain, application.HomePageURL, application.LogoURL,
		))
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) DeleteApplication(ctx context.Context, id int32) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&applicationModel{})
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) CreateService(ctx context.Context, service entities.Service) (entities.Service, error) {
	row := serviceModelFromEntity(service)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Service{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateService(ctx context.Context, service entities.Service) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("id = ?", service.ID).
		Updates(descriptorColumns(
			service.Name, service.DisplayName, service.Description,
			service.IsActive, service.SubDomain, service.HomePageURL, service.LogoURL,
		))
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) DeleteService(ctx context.Context, id int32) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&serviceModel{})
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) AddApplicationRole(ctx context.Context, applicationID int32, role entities.Role) (entities.Role, error) {
	row := applicationRoleModel{
		ApplicationID: applicationID,
		RoleName:      role.Name,
		Description:   role.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Role{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) AddServiceRole(ctx context.Context, serviceID int32, role entities.Role) (entities.Role, error) {
	row := serviceRoleModel{
		ServiceID:   serviceID,
		RoleName:    role.Name,
		Description: role.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Role{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteApplicationRole(ctx context.Context, applicationID int32, roleName string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("application_id = ? AND role_name = ?", applicationID, roleName).
		Delete(&applicationRoleModel{})
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) DeleteServiceRole(ctx context.Context, serviceID int32, roleName string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("service_id = ? AND role_name = ?", serviceID, roleName).
		Delete(&serviceRoleModel{})
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) AddApplicationKey(ctx context.Context, applicationID int32, key entities.Key) (entities.Key, error) {
	row := applicationKeyModel{
		Name:          key.Name,
		ApplicationID: applicationID,
		PublicKey:     key.PublicKey,
		Algorithm:     string(key.Algorithm),
		IsDefault:     key.IsDefault,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Key{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) AddServiceKey(ctx context.Context, serviceID int32, key entities.Key) (entities.Key, error) {
	row := serviceKeyModel{
		Name:      key.Name,
		ServiceID: serviceID,
		PublicKey: key.PublicKey,
		Algorithm: string(key.Algorithm),
		IsDefault: key.IsDefault,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Key{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpsertApplicationConfiguration(ctx context.Context, applicationID int32, configuration entities.Configuration) error {
	row := applicationConfigurationModel{
		ApplicationID: applicationID,
		ConfigName:    configuration.Name,
		ConfigValue:   configuration.Value,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "application_id"}, {Name: "config_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"config_value": configuration.Value,
				"updated_at":   gorm.Expr("now()"),
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repository) UpsertServiceConfiguration(ctx context.Context, serviceID int32, configuration entities.Configuration) error {
	row := serviceConfigurationModel{
		ServiceID:   serviceID,
		ConfigName:  configuration.Name,
		ConfigValue: configuration.Value,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "service_id"}, {Name: "config_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"config_value": configuration.Value,
				"updated_at":   gorm.Expr("now()"),
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return r.translate(err)
	}
	return nil
}

// descriptorColumns maps the mutable descriptor fields explicitly so nil
// pointers clear their columns instead of being skipped.
func descriptorColumns(name string, displayName, description *string, isActive bool, subDomain string, homePageURL, logoURL *string) map[string]interface{} {
	return map[string]interface{}{
		"name":          name,
		"display_name":  displayName,
		"description":   description,
		"is_active":     isActive,
		"sub_domain":    subDomain,
		"home_page_url": homePageURL,
		"logo_url":      logoURL,
		"updated_at":    gorm.Expr("now()"),
	}
}
