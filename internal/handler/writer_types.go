package handler

import (
	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/model"
)

type CreateWriterRequest struct {
	Name      string      `json:"name" binding:"required,min=1,max=255"`
	BirthDate *model.Date `json:"birth_date" binding:"required" swaggertype:"string" example:"1903-06-25"`
}

type UpdateWriterRequest struct {
	Name      string      `json:"name" binding:"required,min=1,max=255"`
	BirthDate *model.Date `json:"birth_date" binding:"required" swaggertype:"string" example:"1903-06-25"`
}

type PatchWriterRequest struct {
	Name      *string     `json:"name" binding:"omitempty,min=1,max=255"`
	BirthDate *model.Date `json:"birth_date" swaggertype:"string" example:"1903-06-25"`
}

type WriterResponse struct {
	Data dto.Writer `json:"data"`
}

type ListWritersResponse struct {
	Data []dto.Writer `json:"data"`
}
