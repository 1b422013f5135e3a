package auth

// MockStore is an in-memory credential store for testing.
type MockStore struct {
	passwords map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{passwords: make(map[string]string)}
}

func (m *MockStore) SetPassword(username string, password string) error {
	m.passwords[username] = password
	return nil
}

func (m *MockStore) GetPassword(username string) (string, error) {
	password, ok := m.passwords[username]
	if !ok {
		return "", ErrCredentialsNotFound
	}
	return password, nil
}

func (m *MockStore) DeletePassword(username string) error {
	if _, ok := m.passwords[username]; !ok {
		return ErrCredentialsNotFound
	}
	delete(m.passwords, username)
	return nil
}
