package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/domain/valueobjects"
	"janus/internal/shared/apperrors"
	"janus/internal/shared/storage"
)

// The foreign-key constraints follow postgres' generated naming; the unique
// constraints are declared in the migrations.
var constraintErrors = map[string]*apperrors.Error{
	"user_session_tokens_token_hash_unique":                domainerrors.ErrTokenHashConflict,
	"user_session_tokens_session_id_application_id_unique": domainerrors.ErrLiveTokenExists,
	"user_session_tokens_session_id_fkey":                  domainerrors.ErrSessionNotFound,
	"user_session_tokens_application_id_fkey":              domainerrors.ErrApplicationNotFound,
	"user_sessions_user_id_fkey":                           domainerrors.ErrUserNotFound,
	"user_sessions_user_sign_in_event_id_fkey":             domainerrors.ErrSignInEventNotFound,
	"user_sign_in_events_user_id_fkey":                     domainerrors.ErrUserNotFound,
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
			"module", "identity/sessions",
			"layer", "adapters/postgres",
			"error", err.Error(),
		)
	}
	return translated
}

func (r *Repository) InsertSignInEvent(ctx context.Context, event entities.SignInEvent) error {
	row := signInEventModelFromEntity(event)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repository) FindSignInEvent(ctx context.Context, id string) (entities.SignInEvent, bool, error) {
	var row signInEventModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.SignInEvent{}, false, nil
		}
		return entities.SignInEvent{}, false, r.translate(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) InsertSession(ctx context.Context, session entities.Session) (entities.Session, error) {
	row := sessionModelFromEntity(session)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Session{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) FindSession(ctx context.Context, id int64) (entities.Session, bool, error) {
	var row sessionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, false, nil
		}
		return entities.Session{}, false, r.translate(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SetSessionStatus(ctx context.Context, id int64, status valueobjects.SessionStatus, terminatedAt *time.Time) (bool, error) {
	updates := map[string]interface{}{"status": string(status)}
	if terminatedAt != nil {
		updates["terminated_at"] = *terminatedAt
	}
	result := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) TouchSession(ctx context.Context, id int64, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", id).
		Update("last_used_at", at)
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) ElevateSession(ctx context.Context, id int64, until time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", id).
		Update("elevated_until", until)
	if result.Error != nil {
		return false, r.translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RotateToken revokes the live token for the pair and inserts the new token
// linked to it, all inside one transaction. The row lock on the live token
// serializes concurrent issuances for the same pair.
func (r *Repository) RotateToken(ctx context.Context, token entities.Token) (entities.Token, error) {
	row := tokenModelFromEntity(token)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var live tokenModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ? AND application_id = ? AND revoked_at IS NULL", token.SessionID, token.ApplicationID).
			First(&live).
			Error
		switch {
		case err == nil:
			if err := tx.Model(&tokenModel{}).
				Where("id = ?", live.ID).
				Update("revoked_at", token.CreatedAt).
				Error; err != nil {
				return err
			}
			row.PreviousTokenID = &live.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First issuance for the pair.
		default:
			return err
		}

		return tx.Create(&row).Error
	})
	if err != nil {
		return entities.Token{}, r.translate(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) FindTokenByHash(ctx context.Context, hash string) (entities.Token, bool, error) {
	var row tokenModel
	err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Token{}, false, nil
		}
		return entities.Token{}, false, r.translate(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) LiveToken(ctx context.Context, sessionID int64, applicationID int32) (entities.Token, bool, error) {
	var row tokenModel
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND application_id = ? AND revoked_at IS NULL", sessionID, applicationID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Token{}, false, nil
		}
		return entities.Token{}, false, r.translate(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) PairTokens(ctx context.Context, sessionID int64, applicationID int32) ([]entities.Token, error) {
	var rows []tokenModel
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND application_id = ?", sessionID, applicationID).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.translate(err)
	}

	tokens := make([]entities.Token, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, row.toEntity())
	}
	return tokens, nil
}

func (r *Repository) RevokeSessionTokens(ctx context.Context, sessionID int64, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&tokenModel{}).
		Where("session_id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", at)
	if result.Error != nil {
		return 0, r.translate(result.Error)
	}
	return result.RowsAffected, nil
}
