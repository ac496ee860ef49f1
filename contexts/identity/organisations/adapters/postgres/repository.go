package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"janus/contexts/identity/organisations/domain/entities"
	domainerrors "janus/contexts/identity/organisations/domain/errors"
	"janus/internal/shared/apperrors"
	"janus/internal/shared/storage"
)

var constraintErrors = map[string]*apperrors.Error{
	"organisation_members_pkey":                 domainerrors.ErrAlreadyMember,
	"organisation_members_user_id_fkey":         domainerrors.ErrUserNotFound,
	"organisation_members_organisation_id_fkey": domainerrors.ErrOrganisationNotFound,
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
			"module", "identity/organisations",
			"layer", "adapters/postgres",
			"error", err.Error(),
		)
	}
	return translated
}

// CreateOrganisation inserts the organisation and its owner membership in
// one transaction; a failing membership insert rolls back the organisation.
func (r *Repository) CreateOrganisation(ctx context.Context, organisation entities.Organisation, owner entities.Member) (entities.Organisation, error) {
	row := organisationModel{Name: organisation.Name}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		owner.OrganisationID = row.ID
		memberRow := memberModelFromEntity(owner)
		return tx.Create(&memberRow).Error
	})
	if err != nil {
		return entities.Organisation{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) FindOrganisation(ctx context.Context, id int64) (entities.Organisation, bool, error) {
	var row organisationModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Organisation{}, false, nil
		}
		return entities.Organisation{}, false, r.translate(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) AddMember(ctx context.Context, member entities.Member) error {
	row := memberModelFromEntity(member)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repository) ListUserMemberships(ctx context.Context, userID int64) ([]entities.Membership, error) {
	var memberRows []memberModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at").
		Find(&memberRows).
		Error
	if err != nil {
		return nil, r.translate(err)
	}
	if len(memberRows) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(memberRows))
	for _, row := range memberRows {
		ids = append(ids, row.OrganisationID)
	}
	var organisationRows []organisationModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&organisationRows).Error; err != nil {
		return nil, r.translate(err)
	}
	organisations := make(map[int64]entities.Organisation, len(organisationRows))
	for _, row := range organisationRows {
		organisations[row.ID] = row.toEntity()
	}

	memberships := make([]entities.Membership, 0, len(memberRows))
	for _, row := range memberRows {
		memberships = append(memberships, entities.Membership{
			Organisation: organisations[row.OrganisationID],
			Member:       row.toEntity(),
		})
	}
	return memberships, nil
}
