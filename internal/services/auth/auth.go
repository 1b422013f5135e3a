package auth

import (
	"errors"

	"panelops/wfctl/internal/util"
)

const ServiceName = "wfctl"

var ErrCredentialsNotFound = errors.New("panel credentials not found")

// Store keeps the panel password for an account name.
type Store interface {
	SetPassword(username string, password string) error
	GetPassword(username string) (string, error)
	DeletePassword(username string) error
}

// DefaultStore returns the standard credential store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeUsername normalizes an account name for consistent key lookup.
func NormalizeUsername(username string) string {
	return util.NormalizeKey(username)
}
