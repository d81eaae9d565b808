package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mudarabah-backend/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store holds users, pools, investments and pool events. Ids are assigned
// by the database and only ever increase.
type Store struct {
	db   *gorm.DB
	mu   *sync.Mutex
	inTx bool
}

// New wraps an opened database. Each Store owns its own write lock, so two
// stores over two databases never contend.
func New(db *gorm.DB) *Store {
	return &Store{db: db, mu: &sync.Mutex{}}
}

// Atomic runs fn against a transaction-scoped store while holding the write
// lock. Everything fn does commits together or not at all. Calling Atomic on
// the store passed to fn reuses the running transaction.
func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, mu: s.mu, inTx: true})
	})
}

// DB exposes the underlying handle for health pings.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// --- users ---

// CreateUser stores a new user. No duplicate-username check happens here
// beyond the unique index; use GetUserByUsername first.
func (s *Store) CreateUser(ctx context.Context, in domain.User) (*domain.User, error) {
	in.ID = 0
	if err := s.db.WithContext(ctx).Create(&in).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &in, nil
}

// GetUser returns nil without error when no user has the id.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

// --- pools ---

// GetPools returns every pool in insertion order.
func (s *Store) GetPools(ctx context.Context) ([]domain.Pool, error) {
	pools := []domain.Pool{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&pools).Error; err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	return pools, nil
}

// GetPool returns nil without error when no pool has the id.
func (s *Store) GetPool(ctx context.Context, id int64) (*domain.Pool, error) {
	var p domain.Pool
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pool %d: %w", id, err)
	}
	return &p, nil
}

// CreatePool assigns an id and stores the pool. Total and investors start
// at zero unless given; the seed capacity defaults to the initial slots.
func (s *Store) CreatePool(ctx context.Context, in domain.Pool) (*domain.Pool, error) {
	in.ID = 0
	if in.Total.IsNegative() || in.Slots < 0 || in.Investors < 0 {
		return nil, &domain.ValidationError{Message: "pool capacity fields cannot be negative"}
	}
	if !in.Target.IsPositive() {
		return nil, &domain.ValidationError{Field: "target", Message: "target must be positive"}
	}
	if err := s.db.WithContext(ctx).Create(&in).Error; err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return s.GetPool(ctx, in.ID)
}

// UpdatePool applies the patch and returns the updated pool, or nil when no
// pool has the id.
func (s *Store) UpdatePool(ctx context.Context, id int64, patch domain.PoolPatch) (*domain.Pool, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	pool, err := s.GetPool(ctx, id)
	if err != nil || pool == nil || patch.IsEmpty() {
		return pool, err
	}

	updates := map[string]interface{}{}
	if patch.Total != nil {
		updates["total"] = *patch.Total
	}
	if patch.Investors != nil {
		updates["investors"] = *patch.Investors
	}
	if patch.Slots != nil {
		updates["slots"] = *patch.Slots
	}
	if err := s.db.WithContext(ctx).Model(&domain.Pool{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update pool %d: %w", id, err)
	}
	return s.GetPool(ctx, id)
}

// ResetPoolsToSeed puts every pool back to zero funding and its seed slots.
func (s *Store) ResetPoolsToSeed(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&domain.Pool{}).
		Updates(map[string]interface{}{
			"total":     decimal.Zero,
			"investors": 0,
			"slots":     gorm.Expr("seed_slots"),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("reset pools: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// --- investments ---

func (s *Store) CreateInvestment(ctx context.Context, inv *domain.Investment) error {
	inv.ID = 0
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("create investment: %w", err)
	}
	return nil
}

// GetInvestmentsByUser returns the user's investments, oldest first.
func (s *Store) GetInvestmentsByUser(ctx context.Context, userID int64) ([]domain.Investment, error) {
	out := []domain.Investment{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list investments for user %d: %w", userID, err)
	}
	return out, nil
}

func (s *Store) DeleteInvestment(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Investment{}).Error; err != nil {
		return fmt.Errorf("delete investment %d: %w", id, err)
	}
	return nil
}

// CountInvestments counts investments across all users.
func (s *Store) CountInvestments(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.Investment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count investments: %w", err)
	}
	return n, nil
}

// --- pool events ---

func (s *Store) CreatePoolEvent(ctx context.Context, ev *domain.PoolEvent) error {
	if err := s.db.WithContext(ctx).Create(ev).Error; err != nil {
		return fmt.Errorf("create pool event: %w", err)
	}
	return nil
}

// GetPoolEvents returns a pool's audit trail, oldest first.
func (s *Store) GetPoolEvents(ctx context.Context, poolID int64) ([]domain.PoolEvent, error) {
	out := []domain.PoolEvent{}
	if err := s.db.WithContext(ctx).Where("pool_id = ?", poolID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list events for pool %d: %w", poolID, err)
	}
	return out, nil
}
