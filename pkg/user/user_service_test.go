package user

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/entities"
	"canteen-queue-optimizer/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users  map[uint]*entities.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uint]*entities.User{}, nextID: 1}
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestUserService(repo *fakeUserRepository) UserService {
	return NewUserService(repo, jwt.NewJWTService())
}

func TestSignupHashesPasswordAndIssuesToken(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	res, err := svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "budi",
		Email:    "budi@student.ac.id",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, "budi", res.User.Name)

	stored, err := repo.GetUserByEmail(context.Background(), "budi@student.ac.id")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.True(t, stored.IsActive)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	first := domain.SignupRequest{Name: "budi", Email: "budi@student.ac.id", Password: "secret123"}
	_, err := svc.Signup(context.Background(), first)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "budi2",
		Email:    "budi@student.ac.id",
		Password: "other456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	assert.Len(t, repo.users, 1)
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{Name: "budi", Email: "budi@student.ac.id", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.SignupRequest{
		Name:     "budi",
		Email:    "other@student.ac.id",
		Password: "other456",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyTaken)
	assert.Len(t, repo.users, 1)
}

func TestLoginVerifiesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{Name: "budi", Email: "budi@student.ac.id", Password: "secret123"})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Email: "budi@student.ac.id", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)

	// wrong password and unknown email produce the same error
	_, err = svc.Login(context.Background(), domain.LoginRequest{Email: "budi@student.ac.id", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Email: "nobody@student.ac.id", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{Name: "budi", Email: "budi@student.ac.id", Password: "secret123"})
	require.NoError(t, err)

	stored, err := repo.GetUserByEmail(context.Background(), "budi@student.ac.id")
	require.NoError(t, err)
	stored.IsActive = false

	_, err = svc.Login(context.Background(), domain.LoginRequest{Email: "budi@student.ac.id", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestMeReturnsProfileWithoutSecrets(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestUserService(repo)

	created, err := svc.Signup(context.Background(), domain.SignupRequest{Name: "budi", Email: "budi@student.ac.id", Password: "secret123"})
	require.NoError(t, err)

	profile, err := svc.Me(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "budi", profile.Name)
	assert.Equal(t, "budi@student.ac.id", profile.Email)

	_, err = svc.Me(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
