package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"manajemen-toko/src/config"
	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/repositories"
)

// OpnameReport is a completed session with its summaries.
type OpnameReport struct {
	StoreID   string               `json:"storeId"`
	StoreName string               `json:"storeName"`
	Session   models.OpnameSession `json:"session"`
	Items     engine.OpnameSummary `json:"itemSummary"`
	Assets    engine.AssetSummary  `json:"assetSummary"`
}

// ============ OPNAME SERVICE ============
type OpnameService struct {
	Repo *repositories.StoreRepository

	// Now and NewID default to time.Now and uuid.NewString. Session dates
	// are stored in UTC so they sort as text on sqlite.
	Now   func() time.Time
	NewID func() string
}

// StartOpname - Build the counting sheet. Nothing is persisted until CompleteOpname.
func (s *OpnameService) StartOpname(ctx context.Context, storeID string) (*engine.Sheet, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	sheet := engine.NewDraft(*store).Sheet()
	return &sheet, nil
}

// CompleteOpname - Reconcile the counts, overwrite stock and asset conditions,
// and append the session to history in one transaction
func (s *OpnameService) CompleteOpname(ctx context.Context, storeID string, sub engine.Submission) (*OpnameReport, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := engine.Validate(store, sub); err != nil {
		var missing *engine.MissingCountError
		if errors.As(err, &missing) {
			return nil, err
		}
		return nil, invalid(err.Error())
	}

	rec := engine.Reconcile(store, sub, s.newID(), s.now())
	updated := rec.Apply(*store)
	engine.Recompute(&updated)

	if err := s.Repo.CompleteOpname(ctx, &updated, &rec.Session); err != nil {
		config.LogError(config.GetLogger(), "OpnameService", "CompleteOpname", "persist opname", storeID, err)
		return nil, err
	}

	report := buildReport(&updated, rec.Session)
	config.GetLogger().WithFields(logrus.Fields{
		"store_id":       storeID,
		"session_id":     rec.Session.ID,
		"matched":        report.Items.MatchedItems,
		"surplus_items":  report.Items.SurplusItems,
		"shortage_items": report.Items.ShortageItems,
		"asset_changes":  report.Assets.Changed,
	}).Info("opname completed")
	return report, nil
}

// History - Completed sessions, newest first
func (s *OpnameService) History(ctx context.Context, storeID string) ([]models.OpnameSession, error) {
	if _, err := s.findStore(ctx, storeID); err != nil {
		return nil, err
	}
	return s.Repo.History(ctx, storeID)
}

// Report - One completed session with its summaries
func (s *OpnameService) Report(ctx context.Context, storeID, sessionID string) (*OpnameReport, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	session, err := s.Repo.Session(ctx, storeID, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return buildReport(store, *session), nil
}

// ============ PRIVATE HELPERS ============
func (s *OpnameService) findStore(ctx context.Context, storeID string) (*models.Store, error) {
	store, err := s.Repo.Find(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

func (s *OpnameService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *OpnameService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func buildReport(store *models.Store, session models.OpnameSession) *OpnameReport {
	return &OpnameReport{
		StoreID:   store.ID,
		StoreName: store.Name,
		Session:   session,
		Items:     engine.SummarizeOpname(session),
		Assets:    engine.SummarizeAssets(session, len(store.Assets)),
	}
}
