package services

import (
	"context"
	"time"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/repositories"
)

// ============ REPORT SERVICE ============

// ReportService serves read-only views. It never writes.
type ReportService struct {
	Repo              *repositories.StoreRepository
	LowStockThreshold int
}

// Summary - Dashboard figures for one store
func (s *ReportService) Summary(ctx context.Context, storeID string) (*engine.StoreSummary, error) {
	store, err := s.store(ctx, storeID)
	if err != nil {
		return nil, err
	}
	latest, err := s.Repo.LatestSession(ctx, storeID)
	if err != nil {
		return nil, err
	}
	threshold := s.LowStockThreshold
	if threshold <= 0 {
		threshold = engine.DefaultLowStockThreshold
	}
	summary := engine.SummarizeStore(store, latest, threshold)
	return &summary, nil
}

// MonthlyCashReport - Income split for one calendar month
func (s *ReportService) MonthlyCashReport(ctx context.Context, storeID string, year int, month time.Month) (*engine.MonthlyReport, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, invalid("year and month are required")
	}
	store, err := s.store(ctx, storeID)
	if err != nil {
		return nil, err
	}
	report := engine.BuildMonthlyReport(store, year, month)
	return &report, nil
}

// Allocation - Month-by-month trace of the capital recoupment
func (s *ReportService) Allocation(ctx context.Context, storeID string) (*engine.Allocation, error) {
	store, err := s.store(ctx, storeID)
	if err != nil {
		return nil, err
	}
	res := engine.Allocate(engine.AllocationInputFor(store))
	return &res, nil
}

func (s *ReportService) Items(ctx context.Context, storeID string) ([]engine.ItemView, error) {
	store, err := s.store(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return engine.ListItems(store), nil
}

func (s *ReportService) Assets(ctx context.Context, storeID string) ([]engine.AssetView, error) {
	store, err := s.store(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return engine.ListAssets(store), nil
}

func (s *ReportService) store(ctx context.Context, storeID string) (*models.Store, error) {
	store, err := s.Repo.Find(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}
