package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

type clientUploadService struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

func NewClientUploadService(backendAdapter adapter.BackendAdapter, log *logger.Logger) ClientUploadService {
	return &clientUploadService{backend: backendAdapter, logger: log}
}

func (u *clientUploadService) UploadRecipeImage(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	ticket, err := u.backend.RecipeImageUploadURL(ctx, models.UploadTicketRequest{
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", fmt.Errorf("request upload ticket: %w", mapAdapterError(err))
	}

	if err = u.backend.UploadToSignedURL(ctx, ticket.UploadURL, contentType, data); err != nil {
		return "", fmt.Errorf("upload recipe image: %w", mapAdapterError(err))
	}

	u.logger.Debug().Str("file", ticket.FileName).Msg("recipe image uploaded")
	return ticket.FileURL, nil
}

func (u *clientUploadService) UploadProfileImage(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	ticket, err := u.backend.ProfileImageUploadURL(ctx, models.UploadTicketRequest{
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", fmt.Errorf("request upload ticket: %w", mapAdapterError(err))
	}

	if err = u.backend.UploadToSignedURL(ctx, ticket.UploadURL, contentType, data); err != nil {
		return "", fmt.Errorf("upload profile image: %w", mapAdapterError(err))
	}

	// the avatar only becomes visible once the backend is told the upload
	// finished
	confirmed, err := u.backend.ConfirmProfileImage(ctx, models.ConfirmUploadRequest{FileName: ticket.FileName})
	if err != nil {
		return "", fmt.Errorf("confirm profile image: %w", mapAdapterError(err))
	}

	u.logger.Debug().Str("file", ticket.FileName).Msg("profile image uploaded")
	return confirmed.ProfileImageURL, nil
}
