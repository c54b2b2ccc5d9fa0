package models

import "fmt"

// ActionKind membedakan jenis aksi pada log undo.
type ActionKind string

const (
	ActionItemAdded      ActionKind = "item_added"
	ActionOrderCreated   ActionKind = "order_created"
	ActionOrderProcessed ActionKind = "order_processed"
)

// ActionEntry adalah satu entri pada riwayat aksi (LIFO). Entri membawa
// persis data yang dibutuhkan untuk membalikkan aksinya: nama+jumlah untuk
// item_added, ID pesanan untuk order_created. Entri order_processed dicatat
// untuk riwayat tetapi tidak bisa di-undo.
type ActionEntry struct {
	Kind     ActionKind `json:"kind"`
	MenuName string     `json:"menu_name,omitempty"`
	Quantity int        `json:"quantity,omitempty"`
	OrderID  uint       `json:"order_id,omitempty"`
}

// Describe mengembalikan deskripsi singkat untuk tampilan riwayat.
func (e ActionEntry) Describe() string {
	switch e.Kind {
	case ActionItemAdded:
		return fmt.Sprintf("Tambah %s x%d", e.MenuName, e.Quantity)
	case ActionOrderCreated:
		return fmt.Sprintf("Buat pesanan #%d", e.OrderID)
	case ActionOrderProcessed:
		return fmt.Sprintf("Proses pesanan #%d", e.OrderID)
	default:
		return string(e.Kind)
	}
}
