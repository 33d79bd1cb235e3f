package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/helpers"
)

// Argon2id parameters recommended by OWASP.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

type UserService struct {
	store  *engine.Store
	logger *zap.SugaredLogger
}

func NewUserService(store *engine.Store, logger *zap.SugaredLogger) *UserService {
	return &UserService{store: store, logger: logger}
}

// Create hashes the password and stores the new user. The password itself
// is never persisted or logged.
func (s *UserService) Create(user *entities.User, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = hash

	doc, err := helpers.ToDocument(user)
	if err != nil {
		return err
	}
	if _, err := s.store.Create(entities.Users, doc); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *UserService) Update(id string, user *entities.User) error {
	user.UpdatedAt = entities.NowISO()
	doc, err := helpers.ToDocument(user)
	if err != nil {
		return err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	if err := s.store.Update(entities.Users, id, doc); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("user not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *UserService) Delete(id string) error {
	if err := s.store.Delete(entities.Users, id); err != nil {
		if engine.IsNotFound(err) {
			return fmt.Errorf("user not found: %w", err)
		}
		return err
	}
	return nil
}

func (s *UserService) GetByID(id string) (*entities.User, error) {
	doc, ok, err := s.store.GetByID(entities.Users, id)
	if err != nil || !ok {
		return nil, err
	}
	return decode[entities.User](doc)
}

func (s *UserService) GetAll() ([]entities.User, error) {
	docs, err := s.store.GetAll(entities.Users)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.User](docs)
}

func (s *UserService) GetByEmail(email string) (*entities.User, error) {
	docs, err := s.store.GetByIndex(entities.Users, "email", email)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode[entities.User](docs[0])
}

func (s *UserService) GetByRole(role string) ([]entities.User, error) {
	docs, err := s.store.GetByIndex(entities.Users, "role", role)
	if err != nil {
		return nil, err
	}
	return decodeAll[entities.User](docs)
}

// Authenticate verifies the password against the stored hash and returns
// the user on success. Inactive accounts never authenticate.
func (s *UserService) Authenticate(email, password string) (*entities.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, fmt.Errorf("invalid credentials")
	}
	ok, err := verifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", fmt.Errorf("password must have at least 6 characters")
	}
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("argon2id$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

func verifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false, fmt.Errorf("malformed password hash")
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("malformed password hash: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("malformed password hash: %w", err)
	}
	got := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
