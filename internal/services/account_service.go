package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"pathfinders/internal/models/db_models"
	"pathfinders/internal/models/response_models"
	"pathfinders/internal/repositories"
	mem "pathfinders/pkg/memcache"
	"pathfinders/pkg/utils"
)

type AccountServiceInterface interface {
	SendOtp(ctx context.Context, email, mode string) error
	VerifyOtp(ctx context.Context, email, code string) (*response_models.AccountLoginResponse, error)
	Me(ctx context.Context, profileID string) (*response_models.AccountResponse, error)
	Logout(ctx context.Context, profileID string) error
	UnlockPremium(ctx context.Context, profileID string) error
}

type AccountService struct {
	profileRepo repositories.ProfileRepository
	mailService IMailService
	otpStore    mem.OtpStore
	funnel      FunnelServiceInterface
}

func NewAccountService(
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
	otpStore mem.OtpStore,
	funnel FunnelServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		profileRepo: profileRepo,
		mailService: mailService,
		otpStore:    otpStore,
		funnel:      funnel,
	}
}

const (
	otpLength = 6
	otpTTL    = 15 * time.Minute
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) SendOtp(ctx context.Context, email, mode string) error {
	email = normalizeEmail(email)

	profile, err := a.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Login only sends a code to known emails, so the form can tell the user
	// to sign up first.
	if mode == "login" && profile == nil {
		return utils.ErrAccountNotFound
	}

	code, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return err
	}
	hashed, err := utils.HashOtpCode(code)
	if err != nil {
		return err
	}
	a.otpStore.Set(email, hashed, otpTTL)

	if err := a.mailService.SendOtpCode(email, code); err != nil {
		log.Printf("OTP mail to %s failed: %v", email, err)
		return err
	}
	return nil
}

func (a *AccountService) VerifyOtp(ctx context.Context, email, code string) (*response_models.AccountLoginResponse, error) {
	email = normalizeEmail(email)

	hashed, ok := a.otpStore.Peek(email)
	if !ok {
		return nil, utils.ErrInvalidOtp
	}
	if err := utils.CompareOtpCode(hashed, code); err != nil {
		// Wrong guess: the stored code stays so the user can retype it.
		return nil, utils.ErrInvalidOtp
	}
	a.otpStore.Consume(email)

	profile, err := a.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		profile = &db_models.Profile{
			Email:       email,
			DisplayName: strings.SplitN(email, "@", 2)[0],
			Role:        "user",
		}
		if err := a.profileRepo.Insert(ctx, profile); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	token, err := utils.CreateToken(profile.ID, profile.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		IsPremium: profile.IsPremium,
	}, nil
}

func (a *AccountService) Me(ctx context.Context, profileID string) (*response_models.AccountResponse, error) {
	profile, err := a.profileRepo.FindById(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}
	return &response_models.AccountResponse{
		ID:          profile.ID.String(),
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Role:        profile.Role,
		IsPremium:   profile.IsPremium,
	}, nil
}

// Logout drops the persisted quiz progress so the next session starts clean;
// the token itself is discarded client-side.
func (a *AccountService) Logout(ctx context.Context, profileID string) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	return a.funnel.Reset(ctx, id)
}

func (a *AccountService) UnlockPremium(ctx context.Context, profileID string) error {
	profile, err := a.profileRepo.FindById(ctx, profileID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if profile == nil {
		return utils.ErrAccountNotFound
	}
	if err := a.profileRepo.SetPremium(ctx, profileID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
