package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PoolStatus is derived from total vs target, never stored.
type PoolStatus string

const (
	PoolOpen PoolStatus = "Open"
	PoolFull PoolStatus = "Full"
)

// Pool is one fundraising round for one business.
type Pool struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"column:name;not null" json:"name"`
	StartDate string `gorm:"column:start_date;not null" json:"startDate"`
	EndDate   string `gorm:"column:end_date;not null" json:"endDate"`
	Duration  string `gorm:"column:duration;not null" json:"duration"`
	CloseDate string `gorm:"column:close_date;not null" json:"closeDate"`

	Total     decimal.Decimal `gorm:"column:total;type:numeric(20,2);not null;default:0" json:"total"`
	Target    decimal.Decimal `gorm:"column:target;type:numeric(20,2);not null" json:"target"`
	Investors int             `gorm:"column:investors;not null;default:0" json:"investors"`
	Slots     int             `gorm:"column:slots;not null" json:"slots"`
	SeedSlots int             `gorm:"column:seed_slots;not null" json:"-"`

	MinProfitRate decimal.Decimal `gorm:"column:min_profit_rate;type:numeric(6,4);not null" json:"minProfitRate"`
	MaxProfitRate decimal.Decimal `gorm:"column:max_profit_rate;type:numeric(6,4);not null" json:"maxProfitRate"`
	InvestorShare decimal.Decimal `gorm:"column:investor_share;type:numeric(6,4);not null" json:"investorShare"`

	CompanyDescription string `gorm:"column:company_description;not null;default:''" json:"companyDescription"`
	CompanyWebsite     string `gorm:"column:company_website;not null;default:''" json:"companyWebsite"`
	CompanySocial      string `gorm:"column:company_social;not null;default:''" json:"companySocial"`
	CompanyContact     string `gorm:"column:company_contact;not null;default:''" json:"companyContact"`
	BusinessModel      string `gorm:"column:business_model;not null;default:''" json:"businessModel"`
	ReturnRatio        string `gorm:"column:return_ratio;not null;default:''" json:"returnRatio"`

	// Unit economics of the funded business (e.g. LED bulbs): one unit costs
	// CostPerUnit to produce and yields ProfitPerUnit over DurationMonths.
	UnitLabel      string          `gorm:"column:unit_label;not null;default:''" json:"unitLabel"`
	CostPerUnit    decimal.Decimal `gorm:"column:cost_per_unit;type:numeric(20,2);not null;default:0" json:"costPerUnit"`
	ProfitPerUnit  decimal.Decimal `gorm:"column:profit_per_unit;type:numeric(20,2);not null;default:0" json:"profitPerUnit"`
	DurationMonths int             `gorm:"column:duration_months;not null;default:0" json:"durationMonths"`

	Status PoolStatus `gorm:"-" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

func (Pool) TableName() string {
	return "investment_pools"
}

// State reports Full once the funded total reaches the target.
func (p *Pool) State() PoolStatus {
	if p.Total.GreaterThanOrEqual(p.Target) {
		return PoolFull
	}
	return PoolOpen
}

// Remaining is the amount still needed to reach the target, never negative.
func (p *Pool) Remaining() decimal.Decimal {
	r := p.Target.Sub(p.Total)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// AfterFind fills the derived status on every load.
func (p *Pool) AfterFind(tx *gorm.DB) error {
	p.Status = p.State()
	return nil
}

// BeforeCreate applies the defaults a new pool starts with.
func (p *Pool) BeforeCreate(tx *gorm.DB) error {
	if p.SeedSlots == 0 {
		p.SeedSlots = p.Slots
	}
	p.Status = p.State()
	return nil
}

// PoolPatch lists the only pool fields that change after creation. Nil
// fields are left untouched.
type PoolPatch struct {
	Total     *decimal.Decimal
	Investors *int
	Slots     *int
}

// Validate rejects patches that would break the non-negative invariants.
func (p PoolPatch) Validate() error {
	if p.Total != nil && p.Total.IsNegative() {
		return &ValidationError{Field: "total", Message: "total cannot be negative"}
	}
	if p.Investors != nil && *p.Investors < 0 {
		return &ValidationError{Field: "investors", Message: "investors cannot be negative"}
	}
	if p.Slots != nil && *p.Slots < 0 {
		return &ValidationError{Field: "slots", Message: "slots cannot be negative"}
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p PoolPatch) IsEmpty() bool {
	return p.Total == nil && p.Investors == nil && p.Slots == nil
}
