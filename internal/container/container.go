package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/config"
	"github.com/HiI2O/lunch-hub/internal/application"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/service"
	"github.com/HiI2O/lunch-hub/internal/infrastructure/email"
	"github.com/HiI2O/lunch-hub/internal/infrastructure/postgres"
	"github.com/HiI2O/lunch-hub/internal/infrastructure/redisstore"
	"github.com/HiI2O/lunch-hub/internal/infrastructure/security"
	handlers "github.com/HiI2O/lunch-hub/internal/interface/http"
	"github.com/HiI2O/lunch-hub/pkg/helpers"
)

// Container wires repositories, domain services, and use cases into the
// HTTP handlers. It owns no lifecycles; the caller closes the pool and
// clients it passed in.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	RDB    *redis.Client

	Users       repository.UserRepository
	Sessions    repository.SessionRepository
	ResetTokens repository.PasswordResetTokenRepository

	Tokens  application.TokenService
	Cookies *helpers.CookieManager

	AuthHandler  *handlers.AuthHandler
	UserHandler  *handlers.UserHandler
	AdminHandler *handlers.AdminUserHandler
}

func New(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client, pub *helpers.RabbitPublisher) *Container {
	users := postgres.NewUserRepository(pool)
	sessions := redisstore.NewSessionRepository(rdb)
	resetTokens := postgres.NewPasswordResetTokenRepository(pool)

	hasher := security.NewBcryptPasswordHasher()
	tokens := security.NewJWTTokenService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	limiter := redisstore.NewRateLimiter(rdb)
	emails := email.NewQueueEmailService(pub)
	cookies := helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure, cfg.RefreshTTL)

	auth := service.NewAuthenticationService(hasher)
	invitations := service.NewInvitationService()

	authHandler := &handlers.AuthHandler{
		Login:          application.NewLoginUseCase(users, sessions, tokens, limiter, auth),
		Logout:         application.NewLogoutUseCase(sessions),
		Refresh:        application.NewRefreshTokenUseCase(sessions, users, tokens),
		SignUp:         application.NewSelfSignUpUseCase(users, emails, limiter, cfg.CompanyPin, cfg.AppURL, logger),
		Activate:       application.NewActivateUserUseCase(users, sessions, tokens, hasher, invitations, logger),
		ForgotPassword: application.NewRequestPasswordResetUseCase(users, resetTokens, emails, cfg.AppURL),
		ResetPassword:  application.NewResetPasswordUseCase(users, resetTokens, hasher, sessions, logger),
		Sessions:       sessions,
		Cookies:        cookies,
		Logger:         logger,
	}

	userHandler := &handlers.UserHandler{
		Profile:        application.NewGetUserProfileUseCase(users),
		ChangePassword: application.NewChangePasswordUseCase(users, hasher, auth, logger),
		Logger:         logger,
	}

	adminHandler := &handlers.AdminUserHandler{
		Invite:           application.NewInviteUserUseCase(users, emails, cfg.AppURL, logger),
		List:             application.NewGetUserListUseCase(users),
		ResendInvitation: application.NewResendInvitationUseCase(users, emails, cfg.AppURL, logger),
		CancelInvitation: application.NewCancelInvitationUseCase(users),
		Deactivate:       application.NewDeactivateUserUseCase(users, sessions, logger),
		Reactivate:       application.NewReactivateUserUseCase(users, logger),
		ChangeRole:       application.NewChangeRoleUseCase(users),
		ForceLogout:      application.NewForceLogoutUseCase(sessions),
		Logger:           logger,
	}

	return &Container{
		Cfg:          cfg,
		Logger:       logger,
		RDB:          rdb,
		Users:        users,
		Sessions:     sessions,
		ResetTokens:  resetTokens,
		Tokens:       tokens,
		Cookies:      cookies,
		AuthHandler:  authHandler,
		UserHandler:  userHandler,
		AdminHandler: adminHandler,
	}
}
