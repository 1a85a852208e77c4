package service

import (
	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/identity"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	RecipeService  ClientRecipeService
	UploadService  ClientUploadService
	SessionJob     ClientSessionJob
}

func NewClientServices(localStore *store.ClientStorages, provider identity.Provider, backendAdapter adapter.BackendAdapter, persistRefreshToken bool, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(provider, backendAdapter, localStore.Sessions, persistRefreshToken, log)

	return &ClientServices{
		SessionService: sessionSvc,
		RecipeService:  NewClientRecipeService(backendAdapter, log),
		UploadService:  NewClientUploadService(backendAdapter, log),
		SessionJob:     NewClientSessionJob(sessionSvc, log),
	}
}
