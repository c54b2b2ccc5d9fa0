package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"go-burjo-pos/models"
	"go-burjo-pos/utils"
)

const receiptSeparator = "------------------------------------"

// ReceiptText menyusun teks nota untuk satu pesanan: nama restoran, waktu
// dibuat, nomor pesanan dan meja, baris item dengan catatan, total, dan
// waktu selesai kalau pesanannya sudah diproses. Penyimpanan ke file
// adalah urusan pemanggil.
func (s *RestaurantService) ReceiptText(orderID uint) (string, error) {
	var order models.Order
	err := s.db.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id asc")
	}).First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrOrderNotFound
		}
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.profile.Name)
	fmt.Fprintf(&b, "Waktu: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Pesanan: #%d    Meja: %d\n", order.ID, order.TableNumber)
	b.WriteString(receiptSeparator + "\n")
	for _, item := range order.OrderItems {
		fmt.Fprintf(&b, "%s x%d  %s\n", item.MenuName, item.Quantity, utils.FormatRupiah(item.Subtotal))
		if item.Notes != "" {
			fmt.Fprintf(&b, "  (Catatan: %s)\n", item.Notes)
		}
	}
	b.WriteString(receiptSeparator + "\n")
	fmt.Fprintf(&b, "TOTAL: %s\n", utils.FormatRupiah(order.TotalAmount))
	if order.CompletedAt != nil {
		fmt.Fprintf(&b, "Selesai: %s\n", order.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String(), nil
}
