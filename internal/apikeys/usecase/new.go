package usecase

import (
	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/apikeys/repository"
	"timeline-to-calendar/pkg/encrypter"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
)

// implUseCase is the private implementation of apikeys.UseCase.
type implUseCase struct {
	repo    repository.Repository
	enc     encrypter.Encrypter
	catalog *llmprovider.Catalog
	l       log.Logger
}

var _ apikeys.UseCase = (*implUseCase)(nil)

// New creates a new apikeys UseCase implementation.
func New(repo repository.Repository, enc encrypter.Encrypter, catalog *llmprovider.Catalog, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		enc:     enc,
		catalog: catalog,
		l:       l,
	}
}
