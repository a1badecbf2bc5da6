package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/fyp-portal/internal/api/middleware"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/internal/repository/mock"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		User:  mockUser,
		Audit: mockAudit,
	}
	svc := NewUserService(repos, NewAuditService(repos, NewActivityHub(0)))
	return svc, mockUser, mockAudit
}

func ptrString(s string) *string { return &s }

// --------------------- Signup ---------------------
func TestSignup_Student(t *testing.T) {
	svc, mockUser, mockAudit := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("alice@uni.test").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 5
		return nil
	})
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	u, err := svc.Signup(user.SignupInput{
		Role:       user.RoleStudent,
		Email:      " Alice@Uni.Test ",
		Name:       "Alice",
		Password:   "secret1",
		Department: ptrString("CS"),
		StaffID:    ptrString("ignored"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), u.ID)
	assert.Equal(t, "alice@uni.test", u.Email)
	assert.Nil(t, u.StaffID)
	assert.True(t, u.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestSignup_Validation(t *testing.T) {
	svc, _, _ := setupUserServiceMocks(t)

	_, err := svc.Signup(user.SignupInput{Role: user.RoleAdmin, Email: "a@b.c", Name: "A", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(user.SignupInput{Role: user.RoleSupervisor, Email: "a@b.c", Name: "A", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(user.SignupInput{Role: user.RoleStudent, Email: "a@b.c", Name: "  ", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@uni.test").Return(user.User{ID: 1}, nil)

	_, err := svc.Signup(user.SignupInput{Role: user.RoleStudent, Email: "bob@uni.test", Name: "Bob", Password: "secret1"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSignup_RaceOnUniqueIndex(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("bob@uni.test").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Signup(user.SignupInput{Role: user.RoleStudent, Email: "bob@uni.test", Name: "Bob", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Email: "bob@uni.test", Role: user.RoleSupervisor, PasswordHash: string(hashed), Active: true}
	mockUser.EXPECT().GetUserByEmail("bob@uni.test").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	res, err := svc.Login(user.LoginInput{Email: "Bob@uni.test", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "token123", res.Token)
	assert.Equal(t, user.RoleSupervisor, res.User.Role)
}

func TestLogin_Failures(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)

	mockUser.EXPECT().GetUserByEmail("ghost@uni.test").Return(user.User{}, gorm.ErrRecordNotFound)
	_, err := svc.Login(user.LoginInput{Email: "ghost@uni.test", Password: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockUser.EXPECT().GetUserByEmail("bob@uni.test").Return(user.User{PasswordHash: string(hashed), Active: true}, nil)
	_, err = svc.Login(user.LoginInput{Email: "bob@uni.test", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	mockUser.EXPECT().GetUserByEmail("bob@uni.test").Return(user.User{PasswordHash: string(hashed), Active: false}, nil)
	_, err = svc.Login(user.LoginInput{Email: "bob@uni.test", Password: "123456"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrAccountInactive)

	mockUser.EXPECT().GetUserByEmail("bob@uni.test").Return(user.User{}, errors.New("connection reset"))
	_, err = svc.Login(user.LoginInput{Email: "bob@uni.test", Password: "123456"})
	assert.ErrorIs(t, err, ErrStorage)
}

// --------------------- Admin ---------------------
func TestSetActive(t *testing.T) {
	svc, mockUser, mockAudit := setupUserServiceMocks(t)
	admin := types.Actor{UserID: 1, Role: user.RoleAdmin}

	_, err := svc.SetActive(types.Actor{UserID: 2, Role: user.RoleSupervisor}, 3, false)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetActive(admin, 1, false)
	assert.ErrorIs(t, err, ErrValidation)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3, Email: "c@uni.test", Active: true}, nil)
	mockUser.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.False(t, u.Active)
		return nil
	})
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)
	u, err := svc.SetActive(admin, 3, false)
	require.NoError(t, err)
	assert.False(t, u.Active)

	// unchanged state writes nothing
	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3, Active: false}, nil)
	_, err = svc.SetActive(admin, 3, false)
	assert.NoError(t, err)

	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)
	_, err = svc.SetActive(admin, 9, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().CountByRole().Return(map[user.Role]int64{user.RoleStudent: 4, user.RoleSupervisor: 2, user.RoleAdmin: 1}, nil)
	mockUser.EXPECT().CountInactive().Return(int64(1), nil)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Total)
	assert.Equal(t, int64(1), stats.Inactive)
}

func TestListUsers_NeverNil(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	role := user.RoleSupervisor
	mockUser.EXPECT().ListUsers(user.ListFilter{Role: &role}).Return(nil, nil)

	users, err := svc.List(user.ListFilter{Role: &role})
	require.NoError(t, err)
	assert.NotNil(t, users)
}
