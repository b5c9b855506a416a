package server

import (
	"context"
	"strings"

	"log/slog"

	v1 "github.com/propscope/underwriter/gen/proto/underwriter/v1"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/repository"
)

type ProfilesService struct {
	v1.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfilesService(profiles repository.ProfileRepository, logger *slog.Logger) *ProfilesService {
	return &ProfilesService{profiles: profiles, logger: logger}
}

func (s *ProfilesService) CreateProfile(ctx context.Context, req *v1.CreateProfileRequest) (*v1.CreateProfileResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	profile, err := s.profiles.GetOrCreateByEmail(ctx, email, strings.TrimSpace(req.GetName()))
	if err != nil {
		s.logger.Error("create profile failed", "email", email, "error", err)
		return nil, common.InternalError("create profile failed")
	}
	return &v1.CreateProfileResponse{
		ProfileId:     profile.ID.String(),
		CreditBalance: int32(profile.CreditBalance),
	}, nil
}

func (s *ProfilesService) GetProfile(ctx context.Context, req *v1.GetProfileRequest) (*v1.GetProfileResponse, error) {
	id, err := parseID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("profile not found")
	}
	return &v1.GetProfileResponse{
		ProfileId:     profile.ID.String(),
		Email:         profile.Email,
		Name:          profile.Name,
		CreditBalance: int32(profile.CreditBalance),
	}, nil
}

func (s *ProfilesService) AddCredits(ctx context.Context, req *v1.AddCreditsRequest) (*v1.AddCreditsResponse, error) {
	id, err := parseID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}
	if req.GetAmount() <= 0 {
		return nil, common.InvalidArgumentError("amount must be positive")
	}
	if exists, _ := s.profiles.Exists(ctx, id); !exists {
		return nil, common.NotFoundError("profile not found")
	}
	if err := s.profiles.AddCredits(ctx, id, int(req.GetAmount())); err != nil {
		s.logger.Error("add credits failed", "profile_id", id, "error", err)
		return nil, common.InternalError("add credits failed")
	}
	balance, err := s.profiles.CreditBalance(ctx, id)
	if err != nil {
		return nil, common.InternalError("add credits failed")
	}
	return &v1.AddCreditsResponse{CreditBalance: int32(balance)}, nil
}
