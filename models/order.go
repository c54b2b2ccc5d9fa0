package models

import "time"

const (
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
)

// Order adalah satu pesanan pelanggan pada satu meja. Total selalu sama
// dengan jumlah subtotal seluruh item; status hanya berpindah sekali dari
// active ke completed (lewat antrian dapur).
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableNumber int         `gorm:"not null" json:"table_number"`
	Status      string      `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

func (o *Order) IsActive() bool {
	return o.Status == OrderStatusActive
}
