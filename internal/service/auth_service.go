package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/resource-hub-web/internal/models"
	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
)

type authBackend interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	Me(ctx context.Context, bearer string) (*models.User, error)
}

type sessionIssuer interface {
	Issue(user models.User, apiToken string) (string, error)
}

// AuthService validates credential submissions and bridges upstream logins
// into signed sessions.
type AuthService struct {
	backend   authBackend
	sessions  sessionIssuer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(backend authBackend, sessions sessionIssuer, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{backend: backend, sessions: sessions, validator: validate, logger: logger}
}

// Authenticate validates the submission shape, exchanges credentials with the
// upstream API, and returns a signed session credential.
//
// Shape failures never reach the network and always map to the generic
// invalid-credentials error; callers must not learn which field failed.
// The raw password is never logged or persisted.
func (s *AuthService) Authenticate(ctx context.Context, req models.LoginRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.ErrInvalidCredentials
	}

	result, err := s.backend.Login(ctx, req)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Something went wrong.")
	}
	if result == nil {
		return "", appErrors.ErrInvalidCredentials
	}

	signed, err := s.sessions.Issue(result.User, result.Token)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	s.logger.Info("session created",
		zap.String("user_id", result.User.ID),
		zap.String("role", string(result.User.Role)),
	)
	return signed, nil
}

// CurrentUser resolves the profile behind a session, best-effort. A session
// without a bearer token is anonymous; upstream failures degrade to nil.
// Never use this for authorization decisions.
func (s *AuthService) CurrentUser(ctx context.Context, claims *models.SessionClaims) *models.User {
	if !claims.Authorized() {
		return nil
	}
	user, err := s.backend.Me(ctx, claims.APIToken)
	if err != nil || user == nil {
		return nil
	}
	return user
}
