package valueobjects

import (
	"janus/internal/shared/apperrors"
)

// PublicKeyAlgorithm is the closed set of algorithms a registered public key
// may declare.
type PublicKeyAlgorithm string

const (
	AlgorithmECDSA   PublicKeyAlgorithm = "ECDSA"
	AlgorithmECDHE   PublicKeyAlgorithm = "ECDHE"
	AlgorithmEdDSA   PublicKeyAlgorithm = "EdDSA"
	AlgorithmRSA3072 PublicKeyAlgorithm = "RSA_3072"
	AlgorithmRSA4096 PublicKeyAlgorithm = "RSA_4096"
)

func ParsePublicKeyAlgorithm(raw string) (PublicKeyAlgorithm, error) {
	switch PublicKeyAlgorithm(raw) {
	case AlgorithmECDSA, AlgorithmECDHE, AlgorithmEdDSA, AlgorithmRSA3072, AlgorithmRSA4096:
		return PublicKeyAlgorithm(raw), nil
	}
	return "", apperrors.Validation("public_key_algorithm", "unknown public key algorithm: "+raw)
}
