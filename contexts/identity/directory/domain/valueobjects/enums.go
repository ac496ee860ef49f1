package valueobjects

import (
	"janus/internal/shared/apperrors"
)

// Gender is the closed set of profile gender values.
type Gender string

const (
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderOther       Gender = "OTHER"
	GenderUnspecified Gender = "UNSPECIFIED"
)

func ParseGender(raw string) (Gender, error) {
	switch Gender(raw) {
	case GenderMale, GenderFemale, GenderOther, GenderUnspecified:
		return Gender(raw), nil
	}
	return "", apperrors.Validation("gender", "unknown gender: "+raw)
}

// AuthProvider identifies how an auth identity authenticates.
type AuthProvider string

const (
	AuthProviderPassword  AuthProvider = "PASSWORD"
	AuthProviderOTP       AuthProvider = "OTP"
	AuthProviderTOTP      AuthProvider = "TOTP"
	AuthProviderGoogle    AuthProvider = "GOOGLE"
	AuthProviderMicrosoft AuthProvider = "MICROSOFT"
)

func ParseAuthProvider(raw string) (AuthProvider, error) {
	switch AuthProvider(raw) {
	case AuthProviderPassword, AuthProviderOTP, AuthProviderTOTP, AuthProviderGoogle, AuthProviderMicrosoft:
		return AuthProvider(raw), nil
	}
	return "", apperrors.Validation("auth_provider", "unknown auth provider: "+raw)
}

// PasswordAlgorithm tags a stored credential hash. The version column on the
// credential row exists so a future algorithm migration can re-hash lazily.
type PasswordAlgorithm string

const (
	PasswordAlgorithmBcrypt   PasswordAlgorithm = "BCRYPT"
	PasswordAlgorithmArgon2id PasswordAlgorithm = "ARGON2ID"
)

func ParsePasswordAlgorithm(raw string) (PasswordAlgorithm, error) {
	switch PasswordAlgorithm(raw) {
	case PasswordAlgorithmBcrypt, PasswordAlgorithmArgon2id:
		return PasswordAlgorithm(raw), nil
	}
	return "", apperrors.Validation("password_algorithm", "unknown password algorithm: "+raw)
}
