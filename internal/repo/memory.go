package repo

import (
	"context"
	"sync"
	"time"

	dom "todoapi/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MemTodoRepo is an in-memory TodoRepo. It mirrors the Postgres
// implementation's contract, pgx.ErrNoRows as the not-found signal
// included, and is what the tests run against.
type MemTodoRepo struct {
	mu    sync.Mutex
	todos []dom.Todo
}

func NewMemTodoRepo() *MemTodoRepo {
	return &MemTodoRepo{}
}

func (r *MemTodoRepo) Create(ctx context.Context, title string, description *string) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	t := dom.Todo{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *MemTodoRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return r.todos[i], nil
}

// List returns newest-first, matching the SQL ORDER BY created_at DESC.
func (r *MemTodoRepo) List(ctx context.Context, completed *bool) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Todo
	for i := len(r.todos) - 1; i >= 0; i-- {
		t := r.todos[i]
		if completed != nil && t.Completed != *completed {
			continue
		}
		list = append(list, t)
	}
	return list, nil
}

func (r *MemTodoRepo) Update(ctx context.Context, id uuid.UUID, patch dom.TodoPatch) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t := r.todos[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.ClearDescription {
		t.Description = nil
	} else if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now().UTC()
	r.todos[i] = t
	return t, nil
}

func (r *MemTodoRepo) Complete(ctx context.Context, id uuid.UUID) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t := r.todos[i]
	t.Completed = true
	t.UpdatedAt = time.Now().UTC()
	r.todos[i] = t
	return t, nil
}

func (r *MemTodoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return pgx.ErrNoRows
	}
	r.todos = append(r.todos[:i], r.todos[i+1:]...)
	return nil
}

// index returns the position of id in todos, or -1. Caller holds mu.
func (r *MemTodoRepo) index(id uuid.UUID) int {
	for i := range r.todos {
		if r.todos[i].ID == id {
			return i
		}
	}
	return -1
}
