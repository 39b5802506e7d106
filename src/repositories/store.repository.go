package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"manajemen-toko/src/models"
)

type StoreRepository struct {
	DB *gorm.DB
}

// ============ STORES ============

// Find - Get one store aggregate, nil when it does not exist
func (r *StoreRepository) Find(ctx context.Context, id string) (*models.Store, error) {
	var rec models.StoreRecord
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return decodeStore(rec.Document)
}

// List - Get every store ordered by name
func (r *StoreRepository) List(ctx context.Context) ([]models.Store, error) {
	var recs []models.StoreRecord
	if err := r.DB.WithContext(ctx).Order("name, id").Find(&recs).Error; err != nil {
		return nil, err
	}

	stores := make([]models.Store, 0, len(recs))
	for _, rec := range recs {
		s, err := decodeStore(rec.Document)
		if err != nil {
			return nil, err
		}
		stores = append(stores, *s)
	}
	return stores, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.StoreRecord{}).Count(&n).Error
	return n, err
}

// Save - Replace the whole aggregate (insert or update)
func (r *StoreRepository) Save(ctx context.Context, store *models.Store) error {
	return saveStore(r.DB.WithContext(ctx), store)
}

// Delete - Remove a store together with its opname history
func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionIDs []string
		if err := tx.Model(&models.OpnameSession{}).Where("store_id = ?", id).Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}

		if len(sessionIDs) > 0 {
			if err := tx.Where("session_id IN ?", sessionIDs).Delete(&models.OpnameItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("session_id IN ?", sessionIDs).Delete(&models.OpnameAssetChange{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", sessionIDs).Delete(&models.OpnameSession{}).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&models.StoreRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func saveStore(tx *gorm.DB, store *models.Store) error {
	doc, err := encodeStore(store)
	if err != nil {
		return err
	}

	rec := models.StoreRecord{
		ID:              store.ID,
		Name:            store.Name,
		Address:         store.Address,
		CapitalRecouped: store.CapitalRecouped,
		NetProfit:       store.NetProfit,
		Document:        doc,
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "address", "capital_recouped", "net_profit", "document", "updated_at"}),
	}).Create(&rec).Error
}

// ============ OPNAME HISTORY ============

func preloadSessionRows(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("AssetChanges", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

// History - Get completed sessions of a store, newest first
func (r *StoreRepository) History(ctx context.Context, storeID string) ([]models.OpnameSession, error) {
	var sessions []models.OpnameSession
	err := preloadSessionRows(r.DB.WithContext(ctx)).
		Where("store_id = ?", storeID).
		Order("session_date DESC, id DESC").
		Find(&sessions).Error

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Session - Get one session, nil when it does not belong to the store
func (r *StoreRepository) Session(ctx context.Context, storeID, sessionID string) (*models.OpnameSession, error) {
	var session models.OpnameSession
	err := preloadSessionRows(r.DB.WithContext(ctx)).
		Where("id = ? AND store_id = ?", sessionID, storeID).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// LatestSession - Get the most recent session, nil when none exists
func (r *StoreRepository) LatestSession(ctx context.Context, storeID string) (*models.OpnameSession, error) {
	var session models.OpnameSession
	err := preloadSessionRows(r.DB.WithContext(ctx)).
		Where("store_id = ?", storeID).
		Order("session_date DESC, id DESC").
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// AppendSession - Store a completed session with its rows
func (r *StoreRepository) AppendSession(ctx context.Context, session *models.OpnameSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// CompleteOpname - Save the counted store and its session atomically
func (r *StoreRepository) CompleteOpname(ctx context.Context, store *models.Store, session *models.OpnameSession) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveStore(tx, store); err != nil {
			return err
		}
		return tx.Create(session).Error
	})
}
