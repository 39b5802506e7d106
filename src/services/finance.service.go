package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
)

// ============ REQUEST STRUCTS ============
type CostInput struct {
	Name        string
	Amount      decimal.Decimal
	Frequency   models.CostFrequency
	Description string
}

type InvestorInput struct {
	Name            string
	SharePercentage decimal.Decimal
}

type CashFlowInput struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

var hundred = decimal.NewFromInt(100)

// ============ OPERATIONAL COSTS ============
func (s *StoreService) AddCost(ctx context.Context, storeID string, in CostInput) (*models.OperationalCost, error) {
	if err := validateCost(in); err != nil {
		return nil, err
	}
	cost := models.OperationalCost{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Amount:      in.Amount,
		Frequency:   in.Frequency,
		Description: strings.TrimSpace(in.Description),
	}
	_, err := s.mutate(ctx, storeID, "AddCost", func(store *models.Store) error {
		store.Costs = append(store.Costs, cost)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

func (s *StoreService) UpdateCost(ctx context.Context, storeID, costID string, in CostInput) (*models.OperationalCost, error) {
	if err := validateCost(in); err != nil {
		return nil, err
	}
	var out models.OperationalCost
	_, err := s.mutate(ctx, storeID, "UpdateCost", func(store *models.Store) error {
		for i := range store.Costs {
			if store.Costs[i].ID == costID {
				store.Costs[i].Name = strings.TrimSpace(in.Name)
				store.Costs[i].Amount = in.Amount
				store.Costs[i].Frequency = in.Frequency
				store.Costs[i].Description = strings.TrimSpace(in.Description)
				out = store.Costs[i]
				return nil
			}
		}
		return ErrCostNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) DeleteCost(ctx context.Context, storeID, costID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteCost", func(store *models.Store) error {
		for i, c := range store.Costs {
			if c.ID == costID {
				store.Costs = append(store.Costs[:i], store.Costs[i+1:]...)
				return nil
			}
		}
		return ErrCostNotFound
	})
	return err
}

// ============ INVESTORS ============

// AddInvestor - Add an investor. The combined share may not pass 100%.
func (s *StoreService) AddInvestor(ctx context.Context, storeID string, in InvestorInput) (*models.Investor, error) {
	if err := validateInvestor(in); err != nil {
		return nil, err
	}
	inv := models.Investor{ID: uuid.NewString(), Name: strings.TrimSpace(in.Name), SharePercentage: in.SharePercentage}
	_, err := s.mutate(ctx, storeID, "AddInvestor", func(store *models.Store) error {
		store.Investors = append(store.Investors, inv)
		return checkShareTotal(store.Investors)
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *StoreService) UpdateInvestor(ctx context.Context, storeID, investorID string, in InvestorInput) (*models.Investor, error) {
	if err := validateInvestor(in); err != nil {
		return nil, err
	}
	var out models.Investor
	_, err := s.mutate(ctx, storeID, "UpdateInvestor", func(store *models.Store) error {
		for i := range store.Investors {
			if store.Investors[i].ID == investorID {
				store.Investors[i].Name = strings.TrimSpace(in.Name)
				store.Investors[i].SharePercentage = in.SharePercentage
				out = store.Investors[i]
				return checkShareTotal(store.Investors)
			}
		}
		return ErrInvestorNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) DeleteInvestor(ctx context.Context, storeID, investorID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteInvestor", func(store *models.Store) error {
		for i, inv := range store.Investors {
			if inv.ID == investorID {
				store.Investors = append(store.Investors[:i], store.Investors[i+1:]...)
				return nil
			}
		}
		return ErrInvestorNotFound
	})
	return err
}

// ============ CASH FLOW ============

// AddCashFlow - Record income for a day
func (s *StoreService) AddCashFlow(ctx context.Context, storeID string, in CashFlowInput) (*models.CashFlowEntry, error) {
	if in.Date.IsZero() {
		return nil, invalid("date is required")
	}
	if !in.Amount.IsPositive() {
		return nil, invalid("amount must be positive")
	}
	entry := models.CashFlowEntry{
		ID:          uuid.NewString(),
		Date:        in.Date,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
	}
	_, err := s.mutate(ctx, storeID, "AddCashFlow", func(store *models.Store) error {
		store.CashFlow = append(store.CashFlow, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *StoreService) DeleteCashFlow(ctx context.Context, storeID, entryID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteCashFlow", func(store *models.Store) error {
		for i, e := range store.CashFlow {
			if e.ID == entryID {
				store.CashFlow = append(store.CashFlow[:i], store.CashFlow[i+1:]...)
				return nil
			}
		}
		return ErrCashFlowNotFound
	})
	return err
}

// ListCashFlow - Entries of one month when year and month are set, otherwise all. Newest first.
func (s *StoreService) ListCashFlow(ctx context.Context, storeID string, year int, month time.Month) ([]models.CashFlowEntry, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if year > 0 && month >= time.January && month <= time.December {
		return engine.EntriesInMonth(store.CashFlow, year, month), nil
	}
	out := append([]models.CashFlowEntry{}, store.CashFlow...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ============ VALIDATION ============
func validateCost(in CostInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("cost name is required")
	}
	if in.Amount.IsNegative() {
		return invalid("cost amount cannot be negative")
	}
	if !in.Frequency.Valid() {
		return invalid("frequency must be harian, mingguan, bulanan, tahunan or sekali")
	}
	return nil
}

func validateInvestor(in InvestorInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("investor name is required")
	}
	if !in.SharePercentage.IsPositive() || in.SharePercentage.GreaterThan(hundred) {
		return invalid("share percentage must be greater than 0 and at most 100")
	}
	return nil
}

func checkShareTotal(investors []models.Investor) error {
	if engine.TotalInvestorShare(investors).GreaterThan(hundred) {
		return ErrShareExceeded
	}
	return nil
}
