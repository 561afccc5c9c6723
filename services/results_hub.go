package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"quizapp/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 256
)

// ResultsHub fans out scored submissions to the websocket clients watching a
// quiz. The client registry is owned by the Run goroutine.
type ResultsHub struct {
	clients    map[*Client]bool
	broadcast  chan outbound
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

type Client struct {
	hub    *ResultsHub
	id     string
	socket *websocket.Conn
	send   chan []byte
	quizID string
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// SubmissionEvent is the payload of a "submission_scored" message.
type SubmissionEvent struct {
	QuizID         string    `json:"quizId"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"maxScore"`
	CorrectCount   int       `json:"correctCount"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

type outbound struct {
	quizID string
	data   []byte
}

func NewResultsHub() *ResultsHub {
	return &ResultsHub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan outbound, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client.
func (h *ResultsHub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			log.Printf("Client registered: %s for quiz %s - Total clients: %d", client.id, client.quizID, total)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Client unregistered: %s for quiz %s - Total clients: %d", client.id, client.quizID, len(h.clients))
			}
			h.mutex.Unlock()

		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *ResultsHub) deliver(msg outbound) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	sent := 0
	for client := range h.clients {
		if client.quizID != msg.quizID {
			continue
		}
		select {
		case client.send <- msg.data:
			sent++
		default:
			log.Printf("Client %s send buffer full, closing connection", client.id)
			close(client.send)
			delete(h.clients, client)
		}
	}
	log.Printf("Message sent to %d clients watching quiz %s", sent, msg.quizID)
}

// BroadcastToQuiz queues a message for every client watching quizID.
func (h *ResultsHub) BroadcastToQuiz(quizID string, messageType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	select {
	case h.broadcast <- outbound{quizID: quizID, data: data}:
	default:
		log.Printf("Broadcast queue full, dropping %s for quiz %s", messageType, quizID)
	}
}

// PublishSubmission announces a graded submission. The per-question details
// are not sent.
func (h *ResultsHub) PublishSubmission(report *models.ScoreReport) {
	h.BroadcastToQuiz(report.QuizID, "submission_scored", SubmissionEvent{
		QuizID:         report.QuizID,
		Score:          report.Score,
		MaxScore:       report.MaxScore,
		CorrectCount:   report.CorrectCount,
		TotalQuestions: report.TotalQuestions,
		SubmittedAt:    time.Now().UTC(),
	})
}

// ConnectedClients returns how many clients watch quizID.
func (h *ResultsHub) ConnectedClients(quizID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	n := 0
	for client := range h.clients {
		if client.quizID == quizID {
			n++
		}
	}
	return n
}

func (h *ResultsHub) RegisterClient(conn *websocket.Conn, quizID string) *Client {
	client := &Client{
		hub:    h,
		id:     uuid.NewString(),
		socket: conn,
		send:   make(chan []byte, sendBuffer),
		quizID: quizID,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return client
	}

	go client.writePump()
	go client.readPump()

	return client
}

func (h *ResultsHub) UnregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		c.socket.Close()
	}()

	c.socket.SetReadLimit(4096)
	c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		return c.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Error unmarshaling message from client %s: %v", c.id, err)
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.socket.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.socket.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "ping":
		c.hub.BroadcastToClient(c, "pong", "pong")
	default:
		log.Printf("Unknown message type: %s from client %s on quiz %s", msg.Type, c.id, c.quizID)
	}
}

// BroadcastToClient sends a message to a single client.
func (h *ResultsHub) BroadcastToClient(c *Client, messageType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if !h.clients[c] {
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("Client %s send buffer full, dropping %s", c.id, messageType)
	}
}
