package memory

import (
	"context"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
)

type UserRepository struct {
	st *Store
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, existing := range r.st.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	u.ID = r.st.newID()
	now := r.st.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.st.users = append(r.st.users, cloneUser(u))
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, u := range r.st.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, u := range r.st.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*UserRepository)(nil)
