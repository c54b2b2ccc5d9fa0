package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	CategoryFood  = "food"
	CategoryDrink = "drink"
)

// Menu adalah satu item yang bisa dijual. Kategori food/drink dibedakan
// lewat tag Category; SpiceLevel hanya berarti untuk food, Size dan
// IsCold hanya untuk drink.
type Menu struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Category   string    `gorm:"type:varchar(20);not null" json:"category"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock      int       `gorm:"not null" json:"stock"`
	SpiceLevel int       `json:"spice_level,omitempty"`
	Size       string    `gorm:"type:varchar(20)" json:"size,omitempty"`
	IsCold     bool      `json:"is_cold,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// DisplayInfo mengembalikan deskripsi menu sesuai kategorinya,
// dipakai oleh listing menu.
func (m *Menu) DisplayInfo() string {
	switch m.Category {
	case CategoryFood:
		spice := strings.Repeat(" [pedas]", m.SpiceLevel)
		return fmt.Sprintf("%s%s - Rp %.0f (Stok: %d)", m.Name, spice, m.Price, m.Stock)
	case CategoryDrink:
		suhu := "panas"
		if m.IsCold {
			suhu = "dingin"
		}
		return fmt.Sprintf("%s (%s, %s) - Rp %.0f (Stok: %d)", m.Name, m.Size, suhu, m.Price, m.Stock)
	default:
		return fmt.Sprintf("%s - Rp %.0f (Stok: %d)", m.Name, m.Price, m.Stock)
	}
}
