// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/satu-password/internal/logger"
	"github.com/MKhiriev/satu-password/models"
)

// memoryStorage keeps accounts and vault items in process memory. It
// implements every repository interface and is selected when no DSN is
// configured. A single mutex serialises writers so multi-row operations are
// atomic.
type memoryStorage struct {
	mu sync.RWMutex

	credentials map[int64]models.LoginCredential
	emails      map[string]int64
	profiles    map[int64]models.UserProfile // keyed by login id
	items       map[int64]models.VaultItem

	nextID int64
	now    func() time.Time

	// afterCredentialInsert runs between the two inserts of CreateAccount.
	// A non-nil error aborts the account and undoes the credential insert.
	afterCredentialInsert func() error

	logger *logger.Logger
}

func newMemoryStorage(log *logger.Logger) *memoryStorage {
	log.Debug().Msg("creating in-memory storage")
	return &memoryStorage{
		credentials: make(map[int64]models.LoginCredential),
		emails:      make(map[string]int64),
		profiles:    make(map[int64]models.UserProfile),
		items:       make(map[int64]models.VaultItem),
		now:         time.Now,
		logger:      log,
	}
}

func (m *memoryStorage) id() int64 {
	m.nextID++
	return m.nextID
}

func emailKey(email string) string {
	return strings.ToLower(email)
}

func cloneBytes(b []byte) []byte {
	return slices.Clone(b)
}

func (m *memoryStorage) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := emailKey(account.Credential.Email)
	if _, ok := m.emails[key]; ok {
		return models.Account{}, ErrLoginAlreadyExists
	}

	cred := account.Credential
	cred.ID = m.id()
	cred.CreatedAt = m.now()
	cred.PasswordHash = cloneBytes(cred.PasswordHash)
	cred.PasswordHashSalt = cloneBytes(cred.PasswordHashSalt)
	m.credentials[cred.ID] = cred
	m.emails[key] = cred.ID

	if m.afterCredentialInsert != nil {
		if err := m.afterCredentialInsert(); err != nil {
			delete(m.credentials, cred.ID)
			delete(m.emails, key)
			logger.FromContext(ctx).Err(err).Str("func", "*memoryStorage.CreateAccount").Msg("account insert rolled back")
			return models.Account{}, err
		}
	}

	profile := account.Profile
	profile.ID = m.id()
	profile.LoginID = cred.ID
	profile.CreatedAt = cred.CreatedAt
	profile.EncryptedMasterKey = cloneBytes(profile.EncryptedMasterKey)
	profile.WrappingKeySalt = cloneBytes(profile.WrappingKeySalt)
	m.profiles[cred.ID] = profile

	return models.Account{Credential: cred, Profile: profile}, nil
}

func (m *memoryStorage) UpdatePassword(_ context.Context, update models.PasswordUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cred, ok := m.credentials[update.LoginID]
	if !ok {
		return ErrCredentialNotFound
	}
	profile, ok := m.profiles[update.LoginID]
	if !ok {
		return ErrProfileNotFound
	}

	cred.PasswordHash = cloneBytes(update.PasswordHash)
	cred.PasswordHashSalt = cloneBytes(update.PasswordHashSalt)
	profile.EncryptedMasterKey = cloneBytes(update.EncryptedMasterKey)
	profile.WrappingKeySalt = cloneBytes(update.WrappingKeySalt)
	m.credentials[update.LoginID] = cred
	m.profiles[update.LoginID] = profile

	return nil
}

func (m *memoryStorage) DeleteAccount(_ context.Context, loginID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cred, ok := m.credentials[loginID]
	if !ok {
		return ErrCredentialNotFound
	}

	if profile, ok := m.profiles[loginID]; ok {
		for id, item := range m.items {
			if item.OwnerID == profile.ID {
				delete(m.items, id)
			}
		}
		delete(m.profiles, loginID)
	}
	delete(m.emails, emailKey(cred.Email))
	delete(m.credentials, loginID)

	return nil
}

func (m *memoryStorage) FindCredentialByEmail(_ context.Context, email string) (models.LoginCredential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emails[emailKey(email)]
	if !ok {
		return models.LoginCredential{}, ErrCredentialNotFound
	}
	return m.credentials[id], nil
}

func (m *memoryStorage) FindProfileByLoginID(_ context.Context, loginID int64) (models.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[loginID]
	if !ok {
		return models.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}

func (m *memoryStorage) CreateItem(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = m.id()
	item.CreatedAt = m.now()
	item.Ciphertext = cloneBytes(item.Ciphertext)
	m.items[item.ID] = item

	return item, nil
}

func (m *memoryStorage) ListItems(_ context.Context, ownerID int64) ([]models.VaultItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.VaultItem, 0)
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b models.VaultItem) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return items, nil
}

func (m *memoryStorage) FindItem(_ context.Context, id int64) (models.VaultItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return models.VaultItem{}, ErrItemNotFound
	}
	return item, nil
}

func (m *memoryStorage) DeleteItem(_ context.Context, id, ownerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return ErrItemNotFound
	}
	delete(m.items, id)

	return nil
}
