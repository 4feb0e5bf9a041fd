package services

import (
	"context"

	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type ProjectService interface {
	Create(ctx context.Context, requesterID string, req *dto.CreateProjectRequest) (*dto.ProjectDTO, error)
	GetByID(ctx context.Context, callerID, callerRole, projectID string) (*dto.ProjectDTO, error)
	ListMine(ctx context.Context, callerID string, filter *dto.ProjectListFilter) (*dto.PagedResponse, error)
	ListAll(ctx context.Context, filter *dto.ProjectListFilter) (*dto.PagedResponse, error)
	Update(ctx context.Context, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectDTO, error)
	UpdateStatus(ctx context.Context, projectID string, req *dto.UpdateProjectStatusRequest) (*dto.ProjectDTO, error)
	SetArchived(ctx context.Context, projectID string, archived bool) error
	Delete(ctx context.Context, projectID string) error
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, requesterID string, req *dto.CreateProjectRequest) (*dto.ProjectDTO, error) {
	project := &models.Project{
		ProjectName:    req.ProjectName,
		ProjectType:    req.ProjectType,
		BudgetRange:    req.BudgetRange,
		ProjectDetails: req.ProjectDetails,
		Deadline:       req.Deadline,
		Status:         models.ProjectStatusPending,
		PaymentStatus:  models.PaymentStatusUnpaid,
		RequestedByID:  requesterID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project requested", "project_id", project.ID, "user_id", requesterID)

	result := dto.NewProjectDTO(project)
	return &result, nil
}

// GetByID - просмотр проекта. Обычный пользователь видит только свои
// заявки, команда и админ - любые.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, callerID, callerRole, projectID string) (*dto.ProjectDTO, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if callerRole == auth.RoleUser && project.RequestedByID != callerID {
		return nil, apperrors.ErrNotProjectOwner
	}

	result := dto.NewProjectDTO(project)
	return &result, nil
}

func (s *ProjectServiceImpl) ListMine(ctx context.Context, callerID string, filter *dto.ProjectListFilter) (*dto.PagedResponse, error) {
	filter.Normalize()
	return s.list(repositories.ProjectFilter{
		Status:        models.ProjectStatus(filter.Status),
		RequestedByID: callerID,
		Archived:      filter.Archived,
		Limit:         filter.Limit(),
		Offset:        filter.Offset(),
	}, filter)
}

func (s *ProjectServiceImpl) ListAll(ctx context.Context, filter *dto.ProjectListFilter) (*dto.PagedResponse, error) {
	filter.Normalize()
	return s.list(repositories.ProjectFilter{
		Status:   models.ProjectStatus(filter.Status),
		Archived: filter.Archived,
		Limit:    filter.Limit(),
		Offset:   filter.Offset(),
	}, filter)
}

func (s *ProjectServiceImpl) Update(ctx context.Context, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectDTO, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if req.ProjectName != "" {
		project.ProjectName = req.ProjectName
	}
	if req.ProjectType != "" {
		project.ProjectType = req.ProjectType
	}
	if req.BudgetRange != "" {
		project.BudgetRange = req.BudgetRange
	}
	if req.ProjectDetails != "" {
		project.ProjectDetails = req.ProjectDetails
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.TotalCost != nil {
		project.TotalCost = *req.TotalCost
	}
	if req.PaidAmount != nil {
		project.PaidAmount = *req.PaidAmount
	}
	project.PaymentStatus = paymentStatusFor(project.TotalCost, project.PaidAmount)

	if err := s.projectRepo.Update(project); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project updated", "project_id", projectID)
	return s.reload(projectID)
}

// UpdateStatus - перевод заявки по жизненному циклу. Допустимые
// переходы: pending -> in_review | rejected, in_review -> approved |
// rejected, approved -> completed.
func (s *ProjectServiceImpl) UpdateStatus(ctx context.Context, projectID string, req *dto.UpdateProjectStatusRequest) (*dto.ProjectDTO, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	next := models.ProjectStatus(req.Status)
	if !validStatusTransition(project.Status, next) {
		return nil, apperrors.ErrInvalidProjectStatus
	}

	if err := s.projectRepo.UpdateStatus(projectID, next); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project status updated", "project_id", projectID, "status", req.Status)
	return s.reload(projectID)
}

func (s *ProjectServiceImpl) SetArchived(ctx context.Context, projectID string, archived bool) error {
	if err := s.projectRepo.SetArchived(projectID, archived); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, projectID string) error {
	if err := s.projectRepo.Delete(projectID); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project deleted", "project_id", projectID)
	return nil
}

func (s *ProjectServiceImpl) findProject(projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) reload(projectID string) (*dto.ProjectDTO, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	result := dto.NewProjectDTO(project)
	return &result, nil
}

func (s *ProjectServiceImpl) list(repoFilter repositories.ProjectFilter, filter *dto.ProjectListFilter) (*dto.PagedResponse, error) {
	projects, total, err := s.projectRepo.FindAll(repoFilter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PagedResponse{
		Items:    dto.NewProjectDTOs(projects),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func validStatusTransition(from, to models.ProjectStatus) bool {
	switch from {
	case models.ProjectStatusPending:
		return to == models.ProjectStatusInReview || to == models.ProjectStatusRejected
	case models.ProjectStatusInReview:
		return to == models.ProjectStatusApproved || to == models.ProjectStatusRejected
	case models.ProjectStatusApproved:
		return to == models.ProjectStatusCompleted
	default:
		return false
	}
}

func paymentStatusFor(totalCost, paidAmount float64) models.PaymentStatus {
	switch {
	case paidAmount <= 0:
		return models.PaymentStatusUnpaid
	case paidAmount < totalCost:
		return models.PaymentStatusPartial
	default:
		return models.PaymentStatusPaid
	}
}
