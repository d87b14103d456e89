package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/models"
)

// Client is one form owner watching a form's responses live.
type Client struct {
	FormID uuid.UUID
	Conn   *websocket.Conn
}

type SubmissionEvent struct {
	FormID       uuid.UUID       `json:"formId"`
	SubmissionID uuid.UUID       `json:"submissionId"`
	UserID       uuid.UUID       `json:"userId"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	Records      []models.Answer `json:"records"`
}

var clients = make(map[uuid.UUID]map[*websocket.Conn]bool)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *SubmissionEvent)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Response feed subscriber registered for form %s", client.FormID)
			clientsMu.Lock()
			if clients[client.FormID] == nil {
				clients[client.FormID] = make(map[*websocket.Conn]bool)
			}
			clients[client.FormID][client.Conn] = true
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Response feed subscriber unregistered for form %s", client.FormID)
			clientsMu.Lock()
			if conns, ok := clients[client.FormID]; ok {
				delete(conns, client.Conn)
				if len(conns) == 0 {
					delete(clients, client.FormID)
				}
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			conns := make([]*websocket.Conn, 0, len(clients[event.FormID]))
			for conn := range clients[event.FormID] {
				conns = append(conns, conn)
			}
			clientsMu.RUnlock()

			for _, conn := range conns {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing submission to subscriber of form %s: %v", event.FormID, err)
					conn.Close()
					clientsMu.Lock()
					delete(clients[event.FormID], conn)
					clientsMu.Unlock()
				}
			}
		}
	}
}

// BroadcastSubmission pushes an accepted submission to everyone watching
// the form. Safe to call when nobody is subscribed.
func BroadcastSubmission(formID uuid.UUID, records []models.Answer) {
	event := &SubmissionEvent{
		FormID:      formID,
		SubmittedAt: time.Now(),
		Records:     records,
	}
	if len(records) > 0 {
		event.SubmissionID = records[0].SubmissionID
		event.UserID = records[0].UserID
	}

	Broadcast <- event
}

// ServeResponseFeed holds the upgraded connection open until the client
// goes away. The route layer has already checked form ownership.
func ServeResponseFeed(conn *websocket.Conn) {
	formID, err := uuid.Parse(conn.Params("id"))
	if err != nil {
		conn.Close()
		return
	}

	client := &Client{FormID: formID, Conn: conn}
	Register <- client
	defer func() {
		Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
