package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/pkg/auth"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenEntropyBytes = 20

var (
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed email/password check
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when the referenced record does not exist
	ErrNotFound = errors.New("record not found")
)

// AccountStore is the account surface the auth service needs
type AccountStore interface {
	Create(account *model.Account) error
	FindByID(id uuid.UUID) (*model.Account, error)
	FindActiveByEmail(email string) (*model.Account, error)
	FindActiveByUsername(username string) (*model.Account, error)
	ExistsByEmail(email string) (bool, error)
	UsernamesContaining(base string) ([]string, error)
	UpdatePassword(id uuid.UUID, hashedPassword string) error
}

// PersonAccountStore is the person surface the auth service needs
type PersonAccountStore interface {
	Create(person *model.Person) error
	FindByID(id uuid.UUID) (*model.Person, error)
	FindByAccountID(accountID uuid.UUID) (*model.Person, error)
}

// PlaceCreator persists new places during registration
type PlaceCreator interface {
	Create(place *model.Place) error
}

// TokenStore is the access-token surface the auth service needs
type TokenStore interface {
	Create(token *model.AccessToken) error
	LatestValidForAccount(accountID uuid.UUID, now time.Time) (*model.AccessToken, error)
	TokenStringsForAccount(accountID uuid.UUID) ([]string, error)
	DeleteForAccount(accountID uuid.UUID) error
}

// AuthService handles registration, credential checks and token issuance
type AuthService struct {
	accounts   AccountStore
	persons    PersonAccountStore
	places     PlaceCreator
	tokens     TokenStore
	revocation auth.RevocationList
	clientID   string
	scope      string
	tokenTTL   time.Duration
}

func NewAuthService(
	accounts AccountStore,
	persons PersonAccountStore,
	places PlaceCreator,
	tokens TokenStore,
	revocation auth.RevocationList,
	clientID, scope string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		accounts:   accounts,
		persons:    persons,
		places:     places,
		tokens:     tokens,
		revocation: revocation,
		clientID:   clientID,
		scope:      scope,
		tokenTTL:   tokenTTL,
	}
}

// Register creates an account, its person profile and home place, and issues
// a bearer token. The login handle is derived from the title-cased names.
func (s *AuthService) Register(req model.RegisterRequest) (*model.AuthResponse, error) {
	exists, err := s.accounts.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	firstName := titleCase(req.FirstName)
	lastName := titleCase(req.LastName)

	base := UsernameBase(firstName, lastName)
	taken, err := s.accounts.UsernamesContaining(base)
	if err != nil {
		return nil, err
	}
	username := AllocateUsername(base, taken)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     req.Email,
		Password:  string(hashed),
		IsActive:  true,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	place := &model.Place{
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.places.Create(place); err != nil {
		return nil, err
	}

	bornDate, err := time.Parse("2006-01-02", req.BornDate)
	if err != nil {
		return nil, err
	}

	person := &model.Person{
		AccountID:   account.ID,
		AddressID:   &place.ID,
		BornDate:    bornDate,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.persons.Create(person); err != nil {
		return nil, err
	}

	token, err := s.IssueToken(account)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Status:      true,
		AccessToken: token.Token,
		PersonID:    person.ID,
	}, nil
}

// Login checks an email/password pair and returns a bearer token, reusing an
// unexpired one when available
func (s *AuthService) Login(req model.LoginRequest) (*model.AuthResponse, error) {
	account, err := s.accounts.FindActiveByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	person, err := s.persons.FindByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(account)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Status:      true,
		AccessToken: token.Token,
		PersonID:    person.ID,
	}, nil
}

// ValidateLogin checks credentials for the web admin login form. Either an
// email or a username identifies the account.
func (s *AuthService) ValidateLogin(email, username, password string) *model.ValidateLoginResponse {
	var account *model.Account
	var err error
	withID := false

	switch {
	case email != "":
		account, err = s.accounts.FindActiveByEmail(email)
	case username != "":
		account, err = s.accounts.FindActiveByUsername(username)
		withID = true
	default:
		return &model.ValidateLoginResponse{Status: false}
	}
	if err != nil {
		return &model.ValidateLoginResponse{Status: false}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return &model.ValidateLoginResponse{Status: false}
	}

	resp := &model.ValidateLoginResponse{
		Status:    true,
		FullName:  account.FullName(),
		ShortName: account.FirstName,
	}
	if withID {
		id := account.ID
		resp.IDUser = &id
	}
	return resp
}

// IssueToken returns the account's most recent unexpired token, minting a new
// one only when none exists
func (s *AuthService) IssueToken(account *model.Account) (*model.TokenResponse, error) {
	now := time.Now()

	existing, err := s.tokens.LatestValidForAccount(account.ID, now)
	if err == nil {
		resp := existing.ToResponse()
		return &resp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	opaque, err := auth.GenerateToken(tokenEntropyBytes)
	if err != nil {
		return nil, err
	}

	token := &model.AccessToken{
		AccountID: account.ID,
		Token:     opaque,
		ClientID:  s.clientID,
		Scope:     s.scope,
		Expires:   now.Add(s.tokenTTL),
		Account:   *account,
	}
	if err := s.tokens.Create(token); err != nil {
		return nil, err
	}

	resp := token.ToResponse()
	return &resp, nil
}

// Logout revokes every outstanding token of the person's account
func (s *AuthService) Logout(ctx context.Context, personID uuid.UUID) error {
	person, err := s.persons.FindByID(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tokens, err := s.tokens.TokenStringsForAccount(person.AccountID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return ErrNotFound
	}

	// Blacklist entries outlive the longest possible remaining token life.
	for _, token := range tokens {
		if err := s.revocation.Revoke(ctx, token, s.tokenTTL); err != nil {
			return err
		}
	}

	return s.tokens.DeleteForAccount(person.AccountID)
}

// UpdatePassword overwrites the credential of an account. There is no
// old-password verification: this is the app-managed reset path.
func (s *AuthService) UpdatePassword(accountID uuid.UUID, password string) error {
	if _, err := s.accounts.FindByID(accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.accounts.UpdatePassword(accountID, string(hashed))
}

// FindUserByEmail resolves an email to its account id
func (s *AuthService) FindUserByEmail(email string) (*uuid.UUID, error) {
	account, err := s.accounts.FindActiveByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	id := account.ID
	return &id, nil
}

// titleCase uppercases the first letter of each whitespace-separated word
func titleCase(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
