package service

import (
	"context"
	"errors"
	"strings"

	dom "todoapi/internal/domain"
	"todoapi/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyTitle = errors.New("title is required")
)

type TodoService struct {
	repo repo.TodoRepo
}

func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) Create(ctx context.Context, title string, description *string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Todo{}, ErrEmptyTitle
	}
	return s.repo.Create(ctx, title, description)
}

func (s *TodoService) GetByID(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Todo{}, mapNoRows(err)
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context, completed *bool) ([]dom.Todo, error) {
	return s.repo.List(ctx, completed)
}

func (s *TodoService) Update(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return dom.Todo{}, ErrEmptyTitle
		}
		patch.Title = &title
	}
	// An empty patch leaves the row untouched, updated_at included.
	if patch.IsZero() {
		return s.GetByID(ctx, id)
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return dom.Todo{}, mapNoRows(err)
	}
	return t, nil
}

func (s *TodoService) Complete(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	t, err := s.repo.Complete(ctx, id)
	if err != nil {
		return dom.Todo{}, mapNoRows(err)
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNoRows(err)
	}
	return nil
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
