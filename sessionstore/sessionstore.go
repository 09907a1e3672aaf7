// Package sessionstore persists MyShows sessions in the system keyring.
package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/s0up4200/myshows/myshows"
)

// DefaultService is the keyring service name sessions are filed under
const DefaultService = "myshows"

// ErrNotFound is returned by Load when no session is stored
var ErrNotFound = errors.New("no stored session")

// Store saves and restores sessions
type Store interface {
	Save(s *myshows.Session) error
	Load(version myshows.APIVersion) (*myshows.Session, error)
	Delete(version myshows.APIVersion) error
}

// Keyring stores one entry per account and API version
type Keyring struct {
	service string
	account string
}

// NewKeyring creates a keyring store for account. An empty service means
// DefaultService.
func NewKeyring(service, account string) *Keyring {
	if service == "" {
		service = DefaultService
	}
	return &Keyring{service: service, account: account}
}

func (k *Keyring) user(version myshows.APIVersion) string {
	return k.account + "/" + version.String()
}

// Save serializes and persists the session
func (k *Keyring) Save(s *myshows.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := keyring.Set(k.service, k.user(s.Version()), string(data)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Load retrieves and deserializes the session stored for version
func (k *Keyring) Load(version myshows.APIVersion) (*myshows.Session, error) {
	str, err := keyring.Get(k.service, k.user(version))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s myshows.Session
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to decode stored session: %w", err)
	}
	if s.Version() != version {
		return nil, fmt.Errorf("stored session is for %s, want %s", s.Version(), version)
	}
	return &s, nil
}

// Delete removes the session stored for version. Deleting a missing entry
// is not an error.
func (k *Keyring) Delete(version myshows.APIVersion) error {
	err := keyring.Delete(k.service, k.user(version))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Nop is a Store that keeps nothing
type Nop struct{}

// Save implements Store
func (Nop) Save(*myshows.Session) error { return nil }

// Load implements Store
func (Nop) Load(myshows.APIVersion) (*myshows.Session, error) { return nil, ErrNotFound }

// Delete implements Store
func (Nop) Delete(myshows.APIVersion) error { return nil }

var (
	_ Store = (*Keyring)(nil)
	_ Store = Nop{}
)
