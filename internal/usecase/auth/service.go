package auth

import (
	"context"
	"errors"
	"fmt"

	"installer-track/internal/config"
	domainInstaller "installer-track/internal/domain/installer"
	"installer-track/internal/logger"
	appErrors "installer-track/pkg/errors"
	"installer-track/pkg/utils"

	"go.uber.org/zap"
)

// Service implements installer authentication.
type Service struct {
	installerRepo domainInstaller.Repository
	config        *config.Config
}

func NewService(installerRepo domainInstaller.Repository, cfg *config.Config) *Service {
	return &Service{
		installerRepo: installerRepo,
		config:        cfg,
	}
}

// Login authenticates the (number, code, password) tuple and issues a
// token carrying the installer's branch claim. Any mismatch returns
// ErrInvalidCredentials; the caller cannot tell which field was wrong.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	installer, err := s.installerRepo.GetByNumberAndCode(ctx, req.Number, req.Code)
	if err != nil {
		if errors.Is(err, domainInstaller.ErrInstallerNotFound) {
			logger.Warn("Login attempt with unknown installer",
				zap.String("number", req.Number),
				zap.String("event", "login_failed_unknown_installer"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckInstallerPassword(installer.Password, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("number", installer.Number),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(
		installer.Number,
		installer.Code,
		installer.TypeOrEmpty(),
		installer.BranchOrEmpty(),
		utils.TokenConfig{
			Secret:        s.config.JWT.Secret,
			Issuer:        s.config.JWT.Issuer,
			Audience:      s.config.JWT.Audience,
			ExpiryMinutes: s.config.JWT.ExpiryMinutes,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Installer logged in",
		zap.String("number", installer.Number),
		zap.String("branch", installer.BranchOrEmpty()),
		zap.String("event", "login_success"),
	)

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
		Number:  installer.Number,
		Code:    installer.Code,
		Type:    installer.Type,
		Branch:  installer.Branch,
	}, nil
}
