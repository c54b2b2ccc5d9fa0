package models

import "time"

const (
	TableStatusEmpty    = "empty"
	TableStatusOccupied = "occupied"
	// reserved, belum dipakai oleh alur inti
	TableStatusCleaning = "cleaning"
)

// Table menyimpan nomor meja, kapasitas, dan pesanan yang sedang
// menempatinya. OrderID adalah identifier, bukan relasi embedded:
// detail pesanan selalu dicari lewat ledger.
type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber int       `gorm:"uniqueIndex;not null" json:"table_number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Status      string    `gorm:"type:varchar(20);not null;default:'empty'" json:"status"`
	OrderID     *uint     `json:"order_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
