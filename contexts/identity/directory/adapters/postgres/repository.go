package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"janus/contexts/identity/directory/domain/entities"
	domainerrors "janus/contexts/identity/directory/domain/errors"
	"janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/directory/ports"
	"janus/internal/shared/apperrors"
	"janus/internal/shared/storage"
)

// constraintErrors keys the error translator: constraint names are declared
// in the migrations and are part of the public contract.
var constraintErrors = map[string]*apperrors.Error{
	"users_username_unique":           domainerrors.ErrUsernameConflict,
	"user_emails_email_id_unique":     domainerrors.ErrEmailConflict,
	"user_phones_phone_number_unique": domainerrors.ErrPhoneConflict,
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
			"module", "identity/directory",
			"layer", "adapters/postgres",
			"error", err.Error(),
		)
	}
	return translated
}

// CreateUser inserts the whole aggregate in one transaction. Every insert
// asserts one affected row; an unexpected empty result is an invariant
// breach and surfaces as INTERNAL.
func (r *Repository) CreateUser(ctx context.Context, draft ports.NewUser) (entities.UserDetails, error) {
	var details entities.UserDetails

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := userModel{
			Username: draft.Username,
			Status:   string(draft.Status),
		}
		if err := insertOne(tx, &user); err != nil {
			return err
		}

		profile := profileModel{
			UserID:      user.ID,
			FirstName:   draft.FirstName,
			LastName:    draft.LastName,
			DisplayName: draft.DisplayName,
			Gender:      string(draft.Gender),
			DateOfBirth: draft.DateOfBirth,
			AvatarURL:   draft.AvatarURL,
		}
		if err := insertOne(tx, &profile); err != nil {
			return err
		}

		email := emailModel{
			UserID:     user.ID,
			EmailID:    draft.Email,
			IsPrimary:  true,
			IsVerified: draft.EmailVerified,
		}
		if err := insertOne(tx, &email); err != nil {
			return err
		}

		var phones []entities.Phone
		if draft.PhoneNumber != nil {
			phone := phoneModel{
				UserID:      user.ID,
				PhoneNumber: *draft.PhoneNumber,
				IsPrimary:   true,
				IsVerified:  draft.PhoneVerified,
			}
			if err := insertOne(tx, &phone); err != nil {
				return err
			}
			phones = append(phones, phone.toEntity())
		}

		identity := authIdentityModel{
			UserID:      user.ID,
			Provider:    string(valueobjects.AuthProviderPassword),
			ProviderKey: draft.Email,
		}
		if err := insertOne(tx, &identity); err != nil {
			return err
		}

		password := passwordModel{
			UserAuthIdentityID: identity.ID,
			Hash:               draft.Password.Hash,
			Algorithm:          string(draft.Password.Algorithm),
			Version:            draft.Password.Version,
		}
		if err := insertOne(tx, &password); err != nil {
			return err
		}

		details = entities.UserDetails{
			User:           user.toEntity(),
			Profile:        profile.toEntity(),
			Emails:         []entities.Email{email.toEntity()},
			Phones:         phones,
			AuthIdentities: []entities.AuthIdentity{identity.toEntity()},
		}
		return nil
	})
	if err != nil {
		return entities.UserDetails{}, r.translate(err)
	}
	return details, nil
}

func (r *Repository) FindUser(ctx context.Context, id valueobjects.Identifier) (entities.User, bool, error) {
	var row userModel
	query := r.db.WithContext(ctx).Model(&userModel{})

	switch id.Kind {
	case valueobjects.ByID:
		if id.UserID == 0 {
			return entities.User{}, false, nil
		}
		query = query.Where("users.id = ?", id.UserID)
	case valueobjects.ByUsername:
		query = query.Where("users.username = ?", id.Value)
	case valueobjects.ByEmail:
		query = query.
			Joins("JOIN user_emails ON user_emails.user_id = users.id").
			Where("user_emails.email_id = ?", id.Value)
	case valueobjects.ByPhone:
		query = query.
			Joins("JOIN user_phones ON user_phones.user_id = users.id").
			Where("user_phones.phone_number = ?", id.Value)
	default:
		return entities.User{}, false, apperrors.Internal(fmt.Errorf("unknown identifier kind %q", id.Kind))
	}

	err := query.Select("users.*").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, false, nil
		}
		return entities.User{}, false, r.translate(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id valueobjects.Identifier, status valueobjects.UserStatus, at time.Time) (int64, error) {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": at,
	}

	query := r.db.WithContext(ctx).Model(&userModel{})
	switch id.Kind {
	case valueobjects.ByID:
		query = query.Where("id = ?", id.UserID)
	case valueobjects.ByUsername:
		query = query.Where("username = ?", id.Value)
	case valueobjects.ByEmail:
		sub := r.db.Model(&emailModel{}).Select("user_id").Where("email_id = ?", id.Value)
		query = query.Where("id IN (?)", sub)
	case valueobjects.ByPhone:
		sub := r.db.Model(&phoneModel{}).Select("user_id").Where("phone_number = ?", id.Value)
		query = query.Where("id IN (?)", sub)
	default:
		return 0, apperrors.Internal(fmt.Errorf("unknown identifier kind %q", id.Kind))
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return 0, r.translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) EmailExists(ctx context.Context, address string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&emailModel{}).
		Where("email_id = ?", address).
		Count(&count).
		Error
	if err != nil {
		return false, r.translate(err)
	}
	return count > 0, nil
}

func (r *Repository) AddEmail(ctx context.Context, userID int64, address string, verified bool) (entities.Email, error) {
	row := emailModel{
		UserID:     userID,
		EmailID:    address,
		IsVerified: verified,
	}
	if err := insertOne(r.db.WithContext(ctx), &row); err != nil {
		return entities.Email{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) MarkEmailVerified(ctx context.Context, address string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&emailModel{}).
		Where("email_id = ?", address).
		Update("is_verified", true)
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// PromotePrimaryEmail demotes the previous primary and promotes the target
// in one transaction, keeping the one-primary-per-user rule intact under
// concurrent writers.
func (r *Repository) PromotePrimaryEmail(ctx context.Context, userID int64, address string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row emailModel
		err := tx.Where("email_id = ?", address).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrEmailNotFound
		}
		if err != nil {
			return err
		}
		if row.UserID != userID {
			return domainerrors.ErrEmailNotOwnedByUser
		}

		if err := tx.Model(&emailModel{}).
			Where("user_id = ? AND is_primary", userID).
			Update("is_primary", false).
			Error; err != nil {
			return err
		}
		return tx.Model(&emailModel{}).
			Where("id = ?", row.ID).
			Update("is_primary", true).
			Error
	})
	if err != nil {
		if apperrors.CodeOf(err) != apperrors.CodeInternal {
			return err
		}
		return r.translate(err)
	}
	return nil
}

// insertOne creates the row and asserts exactly one row was written.
func insertOne(tx *gorm.DB, row interface{}) error {
	result := tx.Create(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return fmt.Errorf("expected single-row insert, got %d rows", result.RowsAffected)
	}
	return nil
}
