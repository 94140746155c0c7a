package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/domain/repositories"
	"muza-life.backend/pkg/crypto"
	"muza-life.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	google     repositories.IdentityProvider
	facebook   repositories.IdentityProvider
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	google repositories.IdentityProvider,
	facebook repositories.IdentityProvider,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		google:     google,
		facebook:   facebook,
		jwtService: jwtService,
	}
}

// Register creates a password account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		AuthProvider: entities.AuthProviderEmail,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return u.issueToken(user)
}

// Login authenticates a password account. LoginType gates the admin console:
// "admin" requires an admin account and "regular" rejects one, so an admin
// credential leak on the storefront form does not open the console.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	// social-only accounts carry no password hash
	if user.PasswordHash == "" || !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	switch input.LoginType {
	case "admin":
		if !user.IsAdmin {
			return nil, domainerrors.ErrForbidden
		}
	case "", "regular":
		if user.IsAdmin {
			return nil, domainerrors.ErrForbidden
		}
	default:
		return nil, domainerrors.ErrInvalidInput
	}

	return u.issueToken(user)
}

// LoginWithGoogle signs in through a Google-issued access token
func (u *AuthUsecase) LoginWithGoogle(ctx context.Context, input *entities.SocialAuthInput) (*entities.AuthResponse, error) {
	return u.socialLogin(ctx, u.google, entities.AuthProviderGoogle, input.AccessToken)
}

// LoginWithFacebook signs in through a Facebook-issued access token
func (u *AuthUsecase) LoginWithFacebook(ctx context.Context, input *entities.SocialAuthInput) (*entities.AuthResponse, error) {
	return u.socialLogin(ctx, u.facebook, entities.AuthProviderFacebook, input.AccessToken)
}

// GetProfile returns the account behind the token
func (u *AuthUsecase) GetProfile(ctx context.Context, userID uint) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

func (u *AuthUsecase) socialLogin(ctx context.Context, provider repositories.IdentityProvider, kind entities.AuthProvider, accessToken string) (*entities.AuthResponse, error) {
	identity, err := provider.Introspect(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(identity.Email))
	if email == "" {
		// some provider accounts expose no email address
		email = fmt.Sprintf("%s.%s@users.muzalife.store", kind, identity.ProviderID)
	}

	user, err := u.userRepo.GetByProviderID(ctx, kind, identity.ProviderID, email)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		user = &entities.User{
			Email:        email,
			Name:         identity.Name,
			AuthProvider: kind,
			AvatarURL:    null.NewString(identity.AvatarURL, identity.AvatarURL != ""),
		}
		switch kind {
		case entities.AuthProviderGoogle:
			user.GoogleID = null.StringFrom(identity.ProviderID)
		case entities.AuthProviderFacebook:
			user.FacebookID = null.StringFrom(identity.ProviderID)
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		return u.issueToken(user)
	}

	// an email-matched account gets the provider identity linked in place
	linked := user.GoogleID.Valid
	if kind == entities.AuthProviderFacebook {
		linked = user.FacebookID.Valid
	}
	if !linked {
		if err := u.userRepo.LinkProvider(ctx, user.ID, kind, identity.ProviderID); err != nil {
			return nil, err
		}
	}
	return u.issueToken(user)
}

func (u *AuthUsecase) issueToken(user *entities.User) (*entities.AuthResponse, error) {
	token, err := u.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{Token: token, User: user}, nil
}
