package menurepo

import (
	"context"
	"sync"

	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"
)

// InMemoryMenuRepository implements ports.MenuRepository with process-lifetime
// in-memory state. All access goes through an internal RWMutex, so the
// find-by-name-then-mutate sequence of an upsert is atomic per batch call
// and id assignment never races.
type InMemoryMenuRepository struct {
	mu sync.RWMutex

	// items holds the catalog in insertion order
	items []*MenuItemDTO

	// byName indexes items by their unique name (the upsert key)
	byName map[string]*MenuItemDTO

	// byID indexes items by their assigned identifier
	byID map[int]*MenuItemDTO

	// nextID is the monotonic id counter; ids are never reused
	nextID int
}

// NewInMemoryMenuRepository creates an empty in-memory menu repository.
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		byName: make(map[string]*MenuItemDTO),
		byID:   make(map[int]*MenuItemDTO),
	}
}

// Upsert applies a batch of validated candidates atomically. Candidates are
// checked before any mutation, so a bad candidate leaves the catalog
// untouched. Within the batch, a candidate matching an existing name updates
// that item in place; duplicate names inside one batch apply in order, last
// write winning.
func (r *InMemoryMenuRepository) Upsert(_ context.Context, candidates []menu.Candidate) ([]*menu.Item, error) {
	if len(candidates) == 0 {
		return nil, errs.NewValueIsRequiredError("candidates")
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*menu.Item, 0, len(candidates))
	for _, candidate := range candidates {
		dto, ok := r.byName[candidate.Name()]
		if ok {
			dto.Price = candidate.Price()
			dto.Category = int(candidate.Category())
		} else {
			r.nextID++
			dto = &MenuItemDTO{
				ID:       r.nextID,
				Name:     candidate.Name(),
				Price:    candidate.Price(),
				Category: int(candidate.Category()),
			}
			r.items = append(r.items, dto)
			r.byName[dto.Name] = dto
			r.byID[dto.ID] = dto
		}

		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}

// Get retrieves a catalog item by id.
func (r *InMemoryMenuRepository) Get(_ context.Context, id int) (*menu.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("itemId", id)
	}

	return toDomain(dto)
}

// GetAll returns a snapshot of the full catalog in insertion order.
func (r *InMemoryMenuRepository) GetAll(_ context.Context) ([]*menu.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*menu.Item, 0, len(r.items))
	for _, dto := range r.items {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
