package services

import (
	"context"

	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*dto.TeamMemberDTO, error)
	GetByID(ctx context.Context, memberID string) (*dto.TeamMemberDTO, error)
	ListPublic(ctx context.Context) ([]dto.TeamMemberDTO, error)
	ListAll(ctx context.Context) ([]dto.TeamMemberDTO, error)
	Update(ctx context.Context, memberID string, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberDTO, error)
	Delete(ctx context.Context, memberID string) error
}

type TeamServiceImpl struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &TeamServiceImpl{teamRepo: teamRepo}
}

func (s *TeamServiceImpl) Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*dto.TeamMemberDTO, error) {
	member := &models.TeamMember{
		Name:         req.Name,
		RoleTitle:    req.RoleTitle,
		Bio:          req.Bio,
		Photo:        req.Photo,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}

	if err := s.teamRepo.Create(member); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "team member created", "member_id", member.ID)

	result := dto.NewTeamMemberDTO(member)
	return &result, nil
}

func (s *TeamServiceImpl) GetByID(ctx context.Context, memberID string) (*dto.TeamMemberDTO, error) {
	member, err := s.teamRepo.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewTeamMemberDTO(member)
	return &result, nil
}

func (s *TeamServiceImpl) ListPublic(ctx context.Context) ([]dto.TeamMemberDTO, error) {
	members, err := s.teamRepo.FindAll(true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTeamMemberDTOs(members), nil
}

func (s *TeamServiceImpl) ListAll(ctx context.Context) ([]dto.TeamMemberDTO, error) {
	members, err := s.teamRepo.FindAll(false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTeamMemberDTOs(members), nil
}

func (s *TeamServiceImpl) Update(ctx context.Context, memberID string, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberDTO, error) {
	member, err := s.teamRepo.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.RoleTitle != "" {
		member.RoleTitle = req.RoleTitle
	}
	if req.Bio != "" {
		member.Bio = req.Bio
	}
	if req.Photo != "" {
		member.Photo = req.Photo
	}
	if req.LinkedinURL != "" {
		member.LinkedinURL = req.LinkedinURL
	}
	if req.GithubURL != "" {
		member.GithubURL = req.GithubURL
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.teamRepo.Update(member); err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "team member updated", "member_id", memberID)

	result := dto.NewTeamMemberDTO(member)
	return &result, nil
}

func (s *TeamServiceImpl) Delete(ctx context.Context, memberID string) error {
	if err := s.teamRepo.Delete(memberID); err != nil {
		if apperrors.Is(err, repositories.ErrTeamMemberNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "team member deleted", "member_id", memberID)
	return nil
}
