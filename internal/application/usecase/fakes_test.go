package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/dcamposl/activos-api/internal/application/usecase"
	"github.com/dcamposl/activos-api/internal/domain"
	"github.com/dcamposl/activos-api/internal/domain/entity"
	"github.com/dcamposl/activos-api/internal/domain/repository"
	"github.com/dcamposl/activos-api/pkg/logger"
)

// Dobles en memoria de los puertos de persistencia.

type fakeProductRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ProductID == p.ProductID {
			return domain.ErrDuplicate
		}
		if existing.SerialNumber != nil && p.SerialNumber != nil && *existing.SerialNumber == *p.SerialNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByProductID(_ context.Context, productID string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ProductID == productID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	items     []*entity.Movement
	createErr error // simula fallo del ledger
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{}
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Movement, len(r.items))
	for i := range r.items {
		cp := *r.items[len(r.items)-1-i]
		list[i] = &cp
	}
	return list, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role entity.Role) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.items {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner ejecuta los callbacks sobre los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
	users     *fakeUserRepo
}

func (r *fakeTxRunner) RunInventory(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	return fn(r.products, r.movements)
}

func (r *fakeTxRunner) RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error {
	return fn(r.users)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func testActor() usecase.Actor {
	return usecase.Actor{
		ID:       "00000000-0000-0000-0000-0000000000aa",
		Username: "jperez",
		Role:     entity.RoleAdmin,
	}
}
