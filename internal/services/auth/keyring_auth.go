package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetPassword(username string, password string) error {
	userKey := NormalizeUsername(username)
	return keyring.Set(k.serviceName, userKey, password)
}

func (k *KeyringStore) GetPassword(username string) (string, error) {
	userKey := NormalizeUsername(username)
	password, err := keyring.Get(k.serviceName, userKey)
	if err == nil {
		return password, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrCredentialsNotFound
	}
	return "", err
}

func (k *KeyringStore) DeletePassword(username string) error {
	userKey := NormalizeUsername(username)
	err := keyring.Delete(k.serviceName, userKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrCredentialsNotFound
	}
	return err
}
