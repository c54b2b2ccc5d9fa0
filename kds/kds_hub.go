package kds

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"go-burjo-pos/models"
)

// Event types
const (
	EventOrderUpdate = "order_update"
	EventQueueUpdate = "queue_update"
	EventTableUpdate = "table_update"
	EventStockUpdate = "stock_update"
	EventStaffNotif  = "staff_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub menampung semua client kitchen display dan menyiarkan perubahan
// pesanan, antrian, meja, dan stok ke semuanya.
type KDSHub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient -> menambahkan connection ke set
func RegisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = true
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate -> menyiarkan perubahan satu pesanan
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastQueueUpdate -> isi antrian dapur berubah
func BroadcastQueueUpdate(orders []models.Order) {
	broadcast(Message{
		Event: EventQueueUpdate,
		Data:  orders,
	})
}

// BroadcastTableUpdate -> status meja berubah
func BroadcastTableUpdate(tables []models.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  tables,
	})
}

// BroadcastStockUpdate -> stok menu berubah (tambah item atau undo)
func BroadcastStockUpdate(menus []models.Menu) {
	broadcast(Message{
		Event: EventStockUpdate,
		Data:  menus,
	})
}

// BroadcastStaffNotification -> notifikasi teks untuk staff
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// broadcast -> fungsi internal untuk mengirim pesan ke semua client
func broadcast(msg Message) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range kdsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(kdsHub.clients, conn)
		}
	}
}
