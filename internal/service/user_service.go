package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/auth"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidOTP         = errors.New("invalid or expired code")
)

type UserService struct {
	userRepo *repository.UserRepository
	issuer   *auth.Issuer
	otpTTL   time.Duration
	log      zerolog.Logger
}

func NewUserService(userRepo *repository.UserRepository, issuer *auth.Issuer, otpTTL time.Duration, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		issuer:   issuer,
		otpTTL:   otpTTL,
		log:      log,
	}
}

type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

func (s *UserService) SignUp(ctx context.Context, input SignUpInput) (*model.User, error) {
	if input.Email == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, ErrInvalidInput
	}

	user := &model.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Roles:        model.RoleList{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueVerification(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyOTP consumes the active code, marks the account verified and signs
// the first access token.
func (s *UserService) VerifyOTP(ctx context.Context, email, code string) (string, *model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidOTP
	}

	verification, err := s.userRepo.ActiveVerification(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	if verification == nil || verification.Code != code {
		return "", nil, ErrInvalidOTP
	}

	if err := s.userRepo.ConsumeVerification(ctx, verification.ID); err != nil {
		return "", nil, err
	}

	user.EmailVerified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResendOTP issues a fresh code. When a password is supplied it must match,
// so an unauthenticated caller cannot spam codes for arbitrary accounts.
func (s *UserService) ResendOTP(ctx context.Context, email string, password *string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}

	if password != nil {
		if err := auth.CheckPassword(*password, user.PasswordHash); err != nil {
			return ErrInvalidCredentials
		}
	}

	return s.issueVerification(ctx, user)
}

func (s *UserService) issueVerification(ctx context.Context, user *model.User) error {
	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}

	verification := &model.EmailVerification{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.userRepo.CreateVerification(ctx, verification); err != nil {
		return err
	}

	// Mail delivery is owned by an external collaborator; the code is logged
	// at debug level for development only.
	s.log.Debug().Str("email", user.Email).Str("code", code).Msg("verification code issued")
	return nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.HasCapability(model.CapUsersManage) {
		return nil, ErrPermissionDenied
	}
	return s.userRepo.List(ctx)
}

func (s *UserService) SetRoles(ctx context.Context, principal model.Principal, id string, roles []string, isSuperAdmin *bool) (*model.User, error) {
	if !principal.HasCapability(model.CapUsersManage) {
		return nil, ErrPermissionDenied
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	roleList := make(model.RoleList, 0, len(roles))
	for _, raw := range roles {
		role := model.Role(raw)
		switch role {
		case model.RoleAdmin, model.RoleAirQuality, model.RoleTreeManagement,
			model.RoleUrbanGreening, model.RoleGovernmentEmission:
			roleList = append(roleList, role)
		default:
			return nil, ErrInvalidInput
		}
	}
	user.Roles = roleList

	if isSuperAdmin != nil {
		// Only an existing super admin may grant or revoke the override flag.
		if !principal.IsSuperAdmin {
			return nil, ErrPermissionDenied
		}
		user.IsSuperAdmin = *isSuperAdmin
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
