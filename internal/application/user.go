package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/fyp-portal/internal/api/middleware"
	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
)

type UserService struct {
	Repos *repository.Repos
	Audit *AuditService
}

func NewUserService(repos *repository.Repos, auditSvc *AuditService) *UserService {
	return &UserService{
		Repos: repos,
		Audit: auditSvc,
	}
}

func (s *UserService) Signup(input user.SignupInput) (*user.User, error) {
	if input.Role != user.RoleStudent && input.Role != user.RoleSupervisor {
		return nil, validationErr("role must be student or supervisor")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || strings.TrimSpace(input.Name) == "" {
		return nil, validationErr("email and name are required")
	}
	if input.Role == user.RoleSupervisor && (input.StaffID == nil || strings.TrimSpace(*input.StaffID) == "") {
		return nil, validationErr("staff_id is required for supervisors")
	}

	if _, err := s.Repos.User.GetUserByEmail(email); err == nil {
		return nil, duplicateErr("email already registered", nil)
	} else if !isNotFound(err) {
		return nil, translate(err, "user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Role:         input.Role,
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hashed),
		Active:       true,
	}
	if input.Role == user.RoleStudent {
		u.Department = input.Department
	} else {
		u.StaffID = input.StaffID
		u.Department = input.Department
	}
	if err := s.Repos.User.CreateUser(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateErr("email already registered", err)
		}
		return nil, translate(err, "user")
	}

	s.Audit.Record(types.Actor{UserID: u.ID, Role: u.Role}, audit.ActionCreate, audit.ResourceUser, u.ID, nil, u, "signed up")
	return u, nil
}

func (s *UserService) Login(input user.LoginInput) (*user.LoginResult, error) {
	u, err := s.Repos.User.GetUserByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if isNotFound(err) {
			return nil, &Error{Kind: ErrUnauthorized, Message: ErrInvalidCredentials.Error(), Err: ErrInvalidCredentials}
		}
		return nil, translate(err, "user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, &Error{Kind: ErrUnauthorized, Message: ErrInvalidCredentials.Error(), Err: ErrInvalidCredentials}
	}
	if !u.Active {
		return nil, &Error{Kind: ErrForbidden, Message: ErrAccountInactive.Error(), Err: ErrAccountInactive}
	}

	token, err := middleware.GenerateToken(u, time.Duration(config.JwtTTLHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &user.LoginResult{Token: token, User: u}, nil
}

func (s *UserService) Me(actor types.Actor) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(actor.UserID)
	if err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

func (s *UserService) List(filter user.ListFilter) ([]user.User, error) {
	users, err := s.Repos.User.ListUsers(filter)
	if err != nil {
		return nil, translate(err, "user")
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}

func (s *UserService) Stats() (*user.Stats, error) {
	byRole, err := s.Repos.User.CountByRole()
	if err != nil {
		return nil, translate(err, "user")
	}
	inactive, err := s.Repos.User.CountInactive()
	if err != nil {
		return nil, translate(err, "user")
	}
	stats := &user.Stats{ByRole: byRole, Inactive: inactive}
	for _, n := range byRole {
		stats.Total += n
	}
	return stats, nil
}

// SetActive activates or deactivates an account. Admins cannot deactivate themselves.
func (s *UserService) SetActive(actor types.Actor, id uint, active bool) (*user.User, error) {
	if !actor.IsAdmin() {
		return nil, forbiddenErr("admin only")
	}
	if id == actor.UserID && !active {
		return nil, validationErr("you cannot deactivate your own account")
	}
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, translate(err, "user")
	}
	if u.Active == active {
		return &u, nil
	}
	before := u
	u.Active = active
	if err := s.Repos.User.UpdateUser(&u); err != nil {
		return nil, translate(err, "user")
	}

	desc := "activated user " + u.Email
	if !active {
		desc = "deactivated user " + u.Email
	}
	s.Audit.Record(actor, audit.ActionUpdate, audit.ResourceUser, u.ID, before, u, desc)
	return &u, nil
}
