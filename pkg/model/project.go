package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ProjectID    uuid.UUID `json:"project_id" db:"project_id"`
	Name         string    `json:"name" db:"name"`
	ProjLanguage string    `json:"proj_language" db:"proj_language"`
	Version      string    `json:"version" db:"version"`
	Code         string    `json:"code" db:"code"`
	CreatedBy    uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProjectReq struct {
	Name         string `json:"name" binding:"required"`
	ProjLanguage string `json:"projLanguage" binding:"required"`
	Version      string `json:"version"`
}

type SaveProjectReq struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
	Code      string    `json:"code"`
}

type GetProjectReq struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
}

type EditProjectReq struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
	Name      string    `json:"name" binding:"required"`
}

type DeleteProjectReq struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
}
