package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"manajemen-toko/src/config"
	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/repositories"
)

// ============ REQUEST STRUCTS ============
type StoreInput struct {
	ID      string
	Name    string
	Address string
}

// ============ STORE SERVICE ============
type StoreService struct {
	Repo *repositories.StoreRepository
}

// ============ PUBLIC METHODS ============

// ListStores - Get every store
func (s *StoreService) ListStores(ctx context.Context) ([]models.Store, error) {
	return s.Repo.List(ctx)
}

// GetStore - Get one store or ErrStoreNotFound
func (s *StoreService) GetStore(ctx context.Context, storeID string) (*models.Store, error) {
	store, err := s.Repo.Find(ctx, storeID)
	if err != nil {
		config.LogError(config.GetLogger(), "StoreService", "GetStore", "find store", storeID, err)
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// CreateStore - Create an empty store. The id is derived from the name when not given.
func (s *StoreService) CreateStore(ctx context.Context, in StoreInput) (*models.Store, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("store name is required")
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = slugify(name)
	}
	existing, err := s.Repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		id = id + "-" + uuid.NewString()[:8]
	}

	store := &models.Store{
		ID:              id,
		Name:            name,
		Address:         strings.TrimSpace(in.Address),
		ItemCategories:  []models.ItemCategory{},
		Units:           []models.Unit{},
		AssetCategories: []models.AssetCategory{},
		Items:           []models.Item{},
		Inventory:       []models.StoreInventory{},
		Assets:          []models.Asset{},
		Costs:           []models.OperationalCost{},
		Investors:       []models.Investor{},
		CashFlow:        []models.CashFlowEntry{},
	}
	engine.Recompute(store)

	if err := s.Repo.Save(ctx, store); err != nil {
		config.LogError(config.GetLogger(), "StoreService", "CreateStore", "save store", store.ID, err)
		return nil, err
	}
	config.GetLogger().WithFields(logrus.Fields{"store_id": store.ID}).Info("store created")
	return store, nil
}

// UpdateStore - Rename or move a store
func (s *StoreService) UpdateStore(ctx context.Context, storeID string, in StoreInput) (*models.Store, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("store name is required")
	}
	return s.mutate(ctx, storeID, "UpdateStore", func(store *models.Store) error {
		store.Name = name
		store.Address = strings.TrimSpace(in.Address)
		return nil
	})
}

// DeleteStore - Delete a store and its opname history
func (s *StoreService) DeleteStore(ctx context.Context, storeID string) error {
	err := s.Repo.Delete(ctx, storeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStoreNotFound
	}
	if err != nil {
		config.LogError(config.GetLogger(), "StoreService", "DeleteStore", "delete store", storeID, err)
		return err
	}
	config.GetLogger().WithFields(logrus.Fields{"store_id": storeID}).Info("store deleted")
	return nil
}

// SeedStores - Insert stores that do not exist yet. Returns how many were added.
func (s *StoreService) SeedStores(ctx context.Context, stores []models.Store) (int, error) {
	added := 0
	for i := range stores {
		store := stores[i].Clone()
		existing, err := s.Repo.Find(ctx, store.ID)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}
		engine.Recompute(&store)
		if err := s.Repo.Save(ctx, &store); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// ============ PRIVATE HELPERS ============

// mutate loads the store, applies fn to a copy, recomputes the capital
// rollups and saves the whole aggregate. Nothing is saved when fn fails.
func (s *StoreService) mutate(ctx context.Context, storeID, op string, fn func(store *models.Store) error) (*models.Store, error) {
	current, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store := current.Clone()
	if err := fn(&store); err != nil {
		return nil, err
	}
	engine.Recompute(&store)

	if err := s.Repo.Save(ctx, &store); err != nil {
		config.LogError(config.GetLogger(), "StoreService", op, "save store", storeID, err)
		return nil, fmt.Errorf("save store %s: %w", storeID, err)
	}

	config.GetLogger().WithFields(logrus.Fields{
		"store_id":         storeID,
		"op":               op,
		"capital_recouped": store.CapitalRecouped.String(),
		"net_profit":       store.NetProfit.String(),
	}).Debug("store updated")
	return &store, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return uuid.NewString()
	}
	return slug
}
