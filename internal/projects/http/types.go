package http

import (
	"time"

	"github.com/stai-tuned/gcf-flood-backend/internal/projects/domain"
	"github.com/stai-tuned/gcf-flood-backend/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type fileReq struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	DataURL  string `json:"data_url"`
	Category string `json:"category"`
}

type projectReq struct {
	Name   string    `json:"name"`
	Number string    `json:"number"`
	Files  []fileReq `json:"files"`
}

func (r projectReq) toDomain(createdBy string, now time.Time, newID func() string) domain.Project {
	files := make([]domain.AttachedFile, 0, len(r.Files))
	for _, f := range r.Files {
		category := f.Category
		if category == "" {
			category = domain.CategoryGeneral
		}
		files = append(files, domain.AttachedFile{
			ID:         newID(),
			Name:       f.Name,
			Size:       f.Size,
			Type:       f.Type,
			DataURL:    f.DataURL,
			Category:   category,
			UploadedAt: now,
		})
	}
	return domain.Project{
		Name:      r.Name,
		Number:    r.Number,
		Files:     files,
		CreatedBy: createdBy,
	}
}
