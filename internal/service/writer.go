package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/snnyvrz/library-manager/internal/dto"
	"github.com/snnyvrz/library-manager/internal/mapper"
	"github.com/snnyvrz/library-manager/internal/repository"
)

type WriterService struct {
	writers repository.WriterRepository
	logger  *zap.Logger
}

func NewWriterService(writers repository.WriterRepository, logger *zap.Logger) *WriterService {
	return &WriterService{
		writers: writers,
		logger:  logger.Named("writer_service"),
	}
}

func (s *WriterService) FindAll(ctx context.Context) ([]dto.Writer, error) {
	writers, err := s.writers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.WritersToDTO(writers), nil
}

func (s *WriterService) FindByID(ctx context.Context, id int64) (dto.Writer, bool, error) {
	writer, err := s.writers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("writer lookup missed", zap.Int64("id", id))
			return dto.Writer{}, false, nil
		}
		return dto.Writer{}, false, err
	}
	return mapper.WriterToDTO(*writer), true, nil
}

func (s *WriterService) FindByName(ctx context.Context, name string) ([]dto.Writer, error) {
	writers, err := s.writers.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return mapper.WritersToDTO(writers), nil
}

func (s *WriterService) FindByBirthDate(ctx context.Context, birthDate time.Time) ([]dto.Writer, error) {
	writers, err := s.writers.FindByBirthDate(ctx, birthDate)
	if err != nil {
		return nil, err
	}
	return mapper.WritersToDTO(writers), nil
}

func (s *WriterService) FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) ([]dto.Writer, error) {
	writers, err := s.writers.FindByNameAndBirthDate(ctx, name, birthDate)
	if err != nil {
		return nil, err
	}
	return mapper.WritersToDTO(writers), nil
}

func (s *WriterService) Create(ctx context.Context, in dto.Writer) (dto.Writer, error) {
	entity := mapper.WriterToEntity(in)
	entity.ID = 0

	saved, err := s.writers.Save(ctx, &entity)
	if err != nil {
		return dto.Writer{}, err
	}

	s.logger.Info("writer created", zap.Int64("id", saved.ID))
	return mapper.WriterToDTO(*saved), nil
}

func (s *WriterService) Update(ctx context.Context, in dto.Writer) (dto.Writer, error) {
	stored, err := s.writers.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.Writer{}, writerNotFound(in.ID)
		}
		return dto.Writer{}, err
	}

	entity := mapper.WriterToEntity(in)
	entity.CreatedAt = stored.CreatedAt

	saved, err := s.writers.Update(ctx, &entity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.Writer{}, writerNotFound(in.ID)
		}
		return dto.Writer{}, err
	}

	s.logger.Info("writer updated", zap.Int64("id", saved.ID))
	return mapper.WriterToDTO(*saved), nil
}

// Delete removes the writer. Books that referenced it lose their writer.
func (s *WriterService) Delete(ctx context.Context, id int64) error {
	writer, err := s.writers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writerNotFound(id)
		}
		return err
	}

	if err := s.writers.Delete(ctx, writer); err != nil {
		return err
	}

	s.logger.Info("writer deleted", zap.Int64("id", id))
	return nil
}
