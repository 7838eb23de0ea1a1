package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ==================== Fakes ====================

type fakeAccountStore struct {
	accounts []*model.Account
}

func (f *fakeAccountStore) Create(account *model.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountStore) FindByID(id uuid.UUID) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountStore) FindActiveByEmail(email string) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email && a.IsActive {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountStore) FindActiveByUsername(username string) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.Username == username && a.IsActive {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountStore) ExistsByEmail(email string) (bool, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountStore) UsernamesContaining(base string) ([]string, error) {
	var out []string
	for _, a := range f.accounts {
		if strings.Contains(a.Username, base) {
			out = append(out, a.Username)
		}
	}
	return out, nil
}

func (f *fakeAccountStore) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	for _, a := range f.accounts {
		if a.ID == id {
			a.Password = hashedPassword
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePersonStore struct {
	persons []*model.Person
}

func (f *fakePersonStore) Create(person *model.Person) error {
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	f.persons = append(f.persons, person)
	return nil
}

func (f *fakePersonStore) FindByID(id uuid.UUID) (*model.Person, error) {
	for _, p := range f.persons {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePersonStore) FindByAccountID(accountID uuid.UUID) (*model.Person, error) {
	for _, p := range f.persons {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakePlaceCreator struct {
	places []*model.Place
}

func (f *fakePlaceCreator) Create(place *model.Place) error {
	if place.ID == uuid.Nil {
		place.ID = uuid.New()
	}
	f.places = append(f.places, place)
	return nil
}

type fakeTokenStore struct {
	tokens []*model.AccessToken
}

func (f *fakeTokenStore) Create(token *model.AccessToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeTokenStore) LatestValidForAccount(accountID uuid.UUID, now time.Time) (*model.AccessToken, error) {
	var latest *model.AccessToken
	for _, t := range f.tokens {
		if t.AccountID != accountID || t.IsExpired(now) {
			continue
		}
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeTokenStore) TokenStringsForAccount(accountID uuid.UUID) ([]string, error) {
	var out []string
	for _, t := range f.tokens {
		if t.AccountID == accountID {
			out = append(out, t.Token)
		}
	}
	return out, nil
}

func (f *fakeTokenStore) DeleteForAccount(accountID uuid.UUID) error {
	kept := f.tokens[:0]
	for _, t := range f.tokens {
		if t.AccountID != accountID {
			kept = append(kept, t)
		}
	}
	f.tokens = kept
	return nil
}

type fakeRevocationList struct {
	revoked map[string]bool
}

func newFakeRevocationList() *fakeRevocationList {
	return &fakeRevocationList{revoked: make(map[string]bool)}
}

func (f *fakeRevocationList) Revoke(_ context.Context, token string, _ time.Duration) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

// ==================== Tests ====================

func newTestAuthService(ttl time.Duration) (*AuthService, *fakeAccountStore, *fakePersonStore, *fakeTokenStore, *fakeRevocationList) {
	accounts := &fakeAccountStore{}
	persons := &fakePersonStore{}
	places := &fakePlaceCreator{}
	tokens := &fakeTokenStore{}
	revocation := newFakeRevocationList()
	svc := NewAuthService(accounts, persons, places, tokens, revocation, "sosfido-mobile", "read write", ttl)
	return svc, accounts, persons, tokens, revocation
}

func registerRequest(email string) model.RegisterRequest {
	return model.RegisterRequest{
		FirstName:   "maria",
		LastName:    "gonzales",
		Email:       email,
		Password:    "secret123",
		BornDate:    "1992-03-10",
		PhoneNumber: "959123450",
		Location:    "Av. Demo 100, Arequipa",
		Latitude:    "-16.409047",
		Longitude:   "-71.537451",
	}
}

func TestRegister(t *testing.T) {
	svc, accounts, persons, _, _ := newTestAuthService(time.Hour)

	resp, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	assert.True(t, resp.Status)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, uuid.Nil, resp.PersonID)

	require.Len(t, accounts.accounts, 1)
	account := accounts.accounts[0]
	assert.Equal(t, "maria.gonzales", account.Username)
	assert.Equal(t, "Maria", account.FirstName)
	assert.Equal(t, "Gonzales", account.LastName)
	assert.NotEqual(t, "secret123", account.Password)

	require.Len(t, persons.persons, 1)
	assert.Equal(t, account.ID, persons.persons[0].AccountID)
	require.NotNil(t, persons.persons[0].AddressID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService(time.Hour)

	_, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	_, err = svc.Register(registerRequest("maria@sosfido.local"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_AllocatesDistinctUsernames(t *testing.T) {
	svc, accounts, _, _, _ := newTestAuthService(time.Hour)

	_, err := svc.Register(registerRequest("maria1@sosfido.local"))
	require.NoError(t, err)
	_, err = svc.Register(registerRequest("maria2@sosfido.local"))
	require.NoError(t, err)
	_, err = svc.Register(registerRequest("maria3@sosfido.local"))
	require.NoError(t, err)

	require.Len(t, accounts.accounts, 3)
	assert.Equal(t, "maria.gonzales", accounts.accounts[0].Username)
	assert.Equal(t, "maria.gonzales.1", accounts.accounts[1].Username)
	assert.Equal(t, "maria.gonzales.2", accounts.accounts[2].Username)
}

func TestLogin(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService(time.Hour)

	reg, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	resp, err := svc.Login(model.LoginRequest{Email: "maria@sosfido.local", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.Equal(t, reg.PersonID, resp.PersonID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService(time.Hour)

	_, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	_, err = svc.Login(model.LoginRequest{Email: "maria@sosfido.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(model.LoginRequest{Email: "nobody@sosfido.local", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ReusesUnexpiredToken(t *testing.T) {
	svc, _, _, tokens, _ := newTestAuthService(time.Hour)

	reg, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	resp, err := svc.Login(model.LoginRequest{Email: "maria@sosfido.local", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, reg.AccessToken, resp.AccessToken)
	assert.Len(t, tokens.tokens, 1)
}

func TestLogin_MintsAfterExpiry(t *testing.T) {
	svc, _, _, tokens, _ := newTestAuthService(10 * time.Millisecond)

	reg, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	resp, err := svc.Login(model.LoginRequest{Email: "maria@sosfido.local", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEqual(t, reg.AccessToken, resp.AccessToken)
	assert.Len(t, tokens.tokens, 2)
}

func TestLogout(t *testing.T) {
	svc, _, _, tokens, revocation := newTestAuthService(time.Hour)
	ctx := context.Background()

	reg, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.PersonID))

	revoked, err := revocation.IsRevoked(ctx, reg.AccessToken)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Empty(t, tokens.tokens)

	// A second logout finds no tokens left
	assert.ErrorIs(t, svc.Logout(ctx, reg.PersonID), ErrNotFound)
}

func TestLogout_UnknownPerson(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService(time.Hour)
	assert.ErrorIs(t, svc.Logout(context.Background(), uuid.New()), ErrNotFound)
}

func TestValidateLogin(t *testing.T) {
	svc, accounts, _, _, _ := newTestAuthService(time.Hour)

	_, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	t.Run("by email omits the account id", func(t *testing.T) {
		resp := svc.ValidateLogin("maria@sosfido.local", "", "secret123")
		assert.True(t, resp.Status)
		assert.Equal(t, "Maria Gonzales", resp.FullName)
		assert.Equal(t, "Maria", resp.ShortName)
		assert.Nil(t, resp.IDUser)
	})

	t.Run("by username carries the account id", func(t *testing.T) {
		resp := svc.ValidateLogin("", "maria.gonzales", "secret123")
		assert.True(t, resp.Status)
		require.NotNil(t, resp.IDUser)
		assert.Equal(t, accounts.accounts[0].ID, *resp.IDUser)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		resp := svc.ValidateLogin("maria@sosfido.local", "", "wrong")
		assert.False(t, resp.Status)
	})

	t.Run("no identifier fails", func(t *testing.T) {
		resp := svc.ValidateLogin("", "", "secret123")
		assert.False(t, resp.Status)
	})
}

func TestUpdatePassword(t *testing.T) {
	svc, accounts, _, _, _ := newTestAuthService(time.Hour)

	_, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(accounts.accounts[0].ID, "newsecret"))

	_, err = svc.Login(model.LoginRequest{Email: "maria@sosfido.local", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login(model.LoginRequest{Email: "maria@sosfido.local", Password: "newsecret"})
	require.NoError(t, err)
	assert.True(t, resp.Status)
}

func TestUpdatePassword_UnknownAccount(t *testing.T) {
	svc, _, _, _, _ := newTestAuthService(time.Hour)
	assert.ErrorIs(t, svc.UpdatePassword(uuid.New(), "whatever"), ErrNotFound)
}

func TestFindUserByEmail(t *testing.T) {
	svc, accounts, _, _, _ := newTestAuthService(time.Hour)

	_, err := svc.Register(registerRequest("maria@sosfido.local"))
	require.NoError(t, err)

	id, err := svc.FindUserByEmail("maria@sosfido.local")
	require.NoError(t, err)
	assert.Equal(t, accounts.accounts[0].ID, *id)

	_, err = svc.FindUserByEmail("nobody@sosfido.local")
	assert.ErrorIs(t, err, ErrNotFound)
}
