package domain

import "time"

// Lot sizes used by the in-game marketplace and by the plan editor
const (
	LotSizeUnit    = 1
	LotSizeTen     = 10
	LotSizeHundred = 100
)

// ValidLotSizes lists the increments a planned quantity can be edited by
var ValidLotSizes = map[int]bool{
	LotSizeUnit:    true,
	LotSizeTen:     true,
	LotSizeHundred: true,
}

// MaxDailyQuantity caps a planned item's daily output. Requirement totals
// stay far below integer overflow and the Postgres INTEGER columns.
const MaxDailyQuantity = 1_000_000

// PlannedItem is one entry of an account's daily production plan.
// DailyQuantity is the total number of units crafted per day.
type PlannedItem struct {
	ID            string    `json:"id" db:"planned_item_id"`
	AccountID     string    `json:"account_id" db:"account_id"`
	ItemName      string    `json:"item_name" db:"item_name"`
	ImageURL      string    `json:"image_url,omitempty" db:"image_url"`
	Category      string    `json:"category,omitempty" db:"category"`
	Type          string    `json:"type,omitempty" db:"item_type"`
	DailyQuantity int       `json:"daily_quantity" db:"daily_quantity"`
	LotSize       int       `json:"lot_size" db:"lot_size"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Favorite marks a catalog item an account wants quick access to.
type Favorite struct {
	AccountID string    `json:"account_id" db:"account_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// JobPlan groups the planned crafts of a single job.
type JobPlan struct {
	Job        string   `json:"job"`
	JobLevel   int      `json:"max_job_level"`
	Items      []string `json:"items"`
	DailyCraft int      `json:"daily_crafts"`
}
