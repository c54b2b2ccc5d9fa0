package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"go-burjo-pos/config"
	"go-burjo-pos/models"
)

var (
	ErrInvalidTable      = errors.New("nomor meja tidak valid")
	ErrTableOccupied     = errors.New("meja sudah terisi")
	ErrInvalidQuantity   = errors.New("jumlah harus lebih dari nol")
	ErrMenuItemNotFound  = errors.New("menu tidak ditemukan")
	ErrInsufficientStock = errors.New("stok tidak mencukupi")
	ErrOrderNotFound     = errors.New("pesanan tidak ditemukan")
	ErrOrderNotActive    = errors.New("pesanan sudah tidak aktif")
	ErrEmptyQueue        = errors.New("antrian dapur kosong")
	ErrEmptyLog          = errors.New("belum ada aksi untuk di-undo")
)

// UndoResult melaporkan hasil satu kali undo. Entri log selalu terpakai,
// berhasil dibalikkan atau tidak.
type UndoResult struct {
	Reversed         bool    `json:"reversed"`
	Action           string  `json:"action"`
	Detail           string  `json:"detail"`
	RestoredSubtotal float64 `json:"restored_subtotal,omitempty"`
}

type SalesReport struct {
	TotalRevenue   float64 `json:"total_revenue"`
	CompletedCount int64   `json:"completed_count"`
	Average        float64 `json:"average"`
}

// RestaurantService memegang seluruh state sesi: katalog menu, meja, dan
// ledger pesanan di database, ditambah antrian dapur (FIFO) dan riwayat
// aksi (LIFO) di memori. Satu mutex menserialkan semua operasi sehingga
// tiap operasi berjalan sampai selesai seperti pada satu sesi kasir.
type RestaurantService struct {
	db      *gorm.DB
	profile config.RestaurantProfile
	mu      sync.Mutex

	queue   []uint
	actions []models.ActionEntry

	// ID pesanan dialokasikan di sini, bukan oleh autoincrement database:
	// ID tidak boleh dipakai ulang walau pesanannya dihapus lewat undo.
	nextOrderID uint

	// pesanan yang terakhir dibuat; preferensi pertama saat undo item.
	activeOrderID uint
}

func NewRestaurantService(db *gorm.DB, profile config.RestaurantProfile) *RestaurantService {
	var maxID int64
	db.Model(&models.Order{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID)
	return &RestaurantService{
		db:          db,
		profile:     profile,
		nextOrderID: uint(maxID) + 1,
	}
}

func (s *RestaurantService) Profile() config.RestaurantProfile {
	return s.profile
}

// CreateOrder membuat pesanan aktif baru untuk satu meja kosong,
// menempati mejanya, memasukkannya ke antrian dapur, dan mencatat aksi.
func (s *RestaurantService) CreateOrder(tableNumber int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var table models.Table
	if err := s.db.Where("table_number = ?", tableNumber).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTable
		}
		return nil, err
	}
	if table.Status == models.TableStatusOccupied {
		return nil, ErrTableOccupied
	}

	order := models.Order{
		ID:          s.nextOrderID,
		TableNumber: tableNumber,
		Status:      models.OrderStatusActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		table.Status = models.TableStatusOccupied
		table.OrderID = &order.ID
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}

	s.nextOrderID++
	s.activeOrderID = order.ID
	s.queue = append(s.queue, order.ID)
	s.actions = append(s.actions, models.ActionEntry{
		Kind:    models.ActionOrderCreated,
		OrderID: order.ID,
	})
	return &order, nil
}

// AddItem menambahkan satu baris item ke pesanan aktif. Pengurangan stok
// dan penambahan baris terjadi bersama-sama atau tidak sama sekali.
func (s *RestaurantService) AddItem(orderID, menuID uint, quantity int, notes string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !order.IsActive() {
		return nil, ErrOrderNotActive
	}

	var menu models.Menu
	if err := s.db.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	subtotal := menu.Price * float64(quantity)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// guard stok di query supaya tidak pernah negatif
		res := tx.Model(&models.Menu{}).
			Where("id = ? AND stock >= ?", menu.ID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		item := models.OrderItem{
			OrderID:  order.ID,
			MenuID:   menu.ID,
			MenuName: menu.Name,
			Quantity: quantity,
			Price:    menu.Price,
			Subtotal: subtotal,
			Notes:    notes,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		order.TotalAmount += subtotal
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	s.actions = append(s.actions, models.ActionEntry{
		Kind:     models.ActionItemAdded,
		MenuName: menu.Name,
		Quantity: quantity,
	})

	var result models.Order
	if err := s.db.Preload("OrderItems").First(&result, order.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// UndoLastAction mengambil entri riwayat paling baru dan mencoba
// membalikkannya. Entri selalu habis terpakai; undo tidak pernah berantai.
func (s *RestaurantService) UndoLastAction() (*UndoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.actions) == 0 {
		return nil, ErrEmptyLog
	}
	entry := s.actions[len(s.actions)-1]
	s.actions = s.actions[:len(s.actions)-1]

	result := &UndoResult{Action: entry.Describe()}
	switch entry.Kind {
	case models.ActionItemAdded:
		s.undoItemAdded(entry, result)
	case models.ActionOrderCreated:
		s.undoOrderCreated(entry, result)
	default:
		result.Detail = "tidak ada handler undo untuk jenis aksi ini"
	}
	return result, nil
}

// undoItemAdded mencari baris item yang cocok nama+jumlah, pesanan aktif
// lebih dulu lalu seluruh pesanan dari yang terbaru, dan menghapus baris
// yang paling akhir ditambahkan pada pesanan pertama yang cocok.
func (s *RestaurantService) undoItemAdded(entry models.ActionEntry, result *UndoResult) {
	candidates := []uint{}
	if s.activeOrderID != 0 {
		candidates = append(candidates, s.activeOrderID)
	}

	var ids []uint
	s.db.Model(&models.Order{}).Order("id desc").Pluck("id", &ids)
	for _, id := range ids {
		if id != s.activeOrderID {
			candidates = append(candidates, id)
		}
	}

	for _, orderID := range candidates {
		subtotal, ok := s.removeLastMatchingItem(orderID, entry.MenuName, entry.Quantity)
		if ok {
			result.Reversed = true
			result.RestoredSubtotal = subtotal
			result.Detail = fmt.Sprintf("item dihapus dari pesanan #%d, subtotal dikembalikan", orderID)
			return
		}
	}
	result.Detail = "tidak menemukan item yang cocok untuk di-undo"
}

// removeLastMatchingItem menghapus baris item paling akhir pada satu
// pesanan yang nama dan jumlahnya sama persis, mengembalikan stok dan
// mengurangi total. Baris yang tidak cocok dilewati, bukan dihapus.
func (s *RestaurantService) removeLastMatchingItem(orderID uint, menuName string, quantity int) (float64, bool) {
	var item models.OrderItem
	err := s.db.Where("order_id = ? AND menu_name = ? AND quantity = ?", orderID, menuName, quantity).
		Order("id desc").First(&item).Error
	if err != nil {
		return 0, false
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Menu{}).Where("id = ?", item.MenuID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("total_amount", gorm.Expr("total_amount - ?", item.Subtotal)).Error
	})
	if err != nil {
		return 0, false
	}
	return item.Subtotal, true
}

// undoOrderCreated membatalkan pembuatan pesanan selama pesanannya masih
// aktif: keluar dari antrian, stok seluruh itemnya dikembalikan, mejanya
// dikosongkan, lalu pesanannya dihapus dari ledger. ID-nya tidak dipakai
// ulang oleh pesanan berikutnya.
func (s *RestaurantService) undoOrderCreated(entry models.ActionEntry, result *UndoResult) {
	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, entry.OrderID).Error; err != nil {
		result.Detail = fmt.Sprintf("pesanan #%d sudah tidak ada", entry.OrderID)
		return
	}
	if !order.IsActive() {
		result.Detail = fmt.Sprintf("pesanan #%d sudah %s, tidak bisa dibatalkan", order.ID, order.Status)
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.OrderItems {
			if err := tx.Model(&models.Menu{}).Where("id = ?", item.MenuID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		var table models.Table
		if err := tx.Where("table_number = ?", order.TableNumber).First(&table).Error; err == nil {
			if table.OrderID != nil && *table.OrderID == order.ID {
				table.Status = models.TableStatusEmpty
				table.OrderID = nil
				if err := tx.Save(&table).Error; err != nil {
					return err
				}
			}
		}

		return tx.Delete(&models.Order{}, order.ID).Error
	})
	if err != nil {
		result.Detail = fmt.Sprintf("gagal membatalkan pesanan #%d: %v", order.ID, err)
		return
	}

	s.removeFromQueue(order.ID)
	if s.activeOrderID == order.ID {
		s.activeOrderID = 0
	}
	result.Reversed = true
	result.Detail = fmt.Sprintf("pesanan #%d dibatalkan dan stok dikembalikan", order.ID)
}

func (s *RestaurantService) removeFromQueue(orderID uint) {
	for i, id := range s.queue {
		if id == orderID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// ProcessNextOrder mengambil pesanan paling depan dari antrian dapur,
// menandainya selesai, dan mengosongkan mejanya.
func (s *RestaurantService) ProcessNextOrder() (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil, ErrEmptyQueue
	}
	orderID := s.queue[0]

	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderStatusCompleted
		order.CompletedAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		var table models.Table
		if err := tx.Where("table_number = ?", order.TableNumber).First(&table).Error; err == nil {
			if table.OrderID != nil && *table.OrderID == order.ID {
				table.Status = models.TableStatusEmpty
				table.OrderID = nil
				if err := tx.Save(&table).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.queue = s.queue[1:]
	s.actions = append(s.actions, models.ActionEntry{
		Kind:    models.ActionOrderProcessed,
		OrderID: order.ID,
	})
	return &order, nil
}

// QueuedOrders mengembalikan isi antrian dapur dalam urutan kedatangan.
func (s *RestaurantService) QueuedOrders() ([]models.Order, error) {
	s.mu.Lock()
	ids := make([]uint, len(s.queue))
	copy(ids, s.queue)
	s.mu.Unlock()

	if len(ids) == 0 {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := s.db.Preload("OrderItems").Where("id IN ?", ids).Find(&orders).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	result := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			result = append(result, o)
		}
	}
	return result, nil
}

// ActionHistory mengembalikan riwayat aksi, yang terbaru lebih dulu.
func (s *RestaurantService) ActionHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]string, 0, len(s.actions))
	for i := len(s.actions) - 1; i >= 0; i-- {
		history = append(history, s.actions[i].Describe())
	}
	return history
}

// GetSalesReport menghitung total, jumlah, dan rata-rata pendapatan dari
// pesanan yang sudah selesai.
func (s *RestaurantService) GetSalesReport() (*SalesReport, error) {
	report := &SalesReport{}
	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Count(&report.CompletedCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&report.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if report.CompletedCount > 0 {
		report.Average = report.TotalRevenue / float64(report.CompletedCount)
	}
	return report, nil
}
