package services

import (
	"context"

	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactDTO, error)
	GetByID(ctx context.Context, contactID string) (*dto.ContactDTO, error)
	List(ctx context.Context, filter *dto.ContactListFilter) (*dto.PagedResponse, error)
	MarkRead(ctx context.Context, contactID string) error
	Delete(ctx context.Context, contactID string) error
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

// Submit - прием сообщения с публичной формы, авторизация не требуется
func (s *ContactServiceImpl) Submit(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactDTO, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "contact message received", "contact_id", contact.ID)

	result := dto.NewContactDTO(contact)
	return &result, nil
}

func (s *ContactServiceImpl) GetByID(ctx context.Context, contactID string) (*dto.ContactDTO, error) {
	contact, err := s.contactRepo.FindByID(contactID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewContactDTO(contact)
	return &result, nil
}

func (s *ContactServiceImpl) List(ctx context.Context, filter *dto.ContactListFilter) (*dto.PagedResponse, error) {
	filter.Normalize()

	contacts, total, err := s.contactRepo.FindAll(filter.UnreadOnly, filter.Limit(), filter.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PagedResponse{
		Items:    dto.NewContactDTOs(contacts),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *ContactServiceImpl) MarkRead(ctx context.Context, contactID string) error {
	if err := s.contactRepo.MarkRead(contactID); err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return apperrors.ErrContactNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContactServiceImpl) Delete(ctx context.Context, contactID string) error {
	if err := s.contactRepo.Delete(contactID); err != nil {
		if apperrors.Is(err, repositories.ErrContactNotFound) {
			return apperrors.ErrContactNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "contact message deleted", "contact_id", contactID)
	return nil
}
