// Package server hosts Pife sessions over WebSocket. Each connection
// owns exactly one engine session; intents flow in as JSON messages,
// engine events flow back out. Persistence and identity live at this
// collaborator boundary, never inside the engine.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/Reinaldo-Kn/pifatro/internal/config"
	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
	"github.com/Reinaldo-Kn/pifatro/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // single-player sessions carry no cross-user state
	},
}

// SnapshotStore is the persistence collaborator contract.
type SnapshotStore interface {
	SaveState(ctx context.Context, userID string, snap session.Snapshot) error
	LoadState(ctx context.Context, userID string) (*session.Snapshot, error)
}

// Server accepts WebSocket connections and runs one session per client.
type Server struct {
	config *config.Config
	redis  *redis.Client
	store  SnapshotStore
	tokens *TokenManager

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
}

// NewServer creates a server and verifies the Redis connection.
func NewServer(cfg *config.Config) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Server{
		config:  cfg,
		redis:   rdb,
		store:   storage.NewRedisStore(rdb),
		tokens:  NewTokenManager(cfg.Auth),
		clients: make(map[string]*Client),
	}, nil
}

// Start blocks serving /ws and /health.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	log.Printf("server listening on ws://%s/ws", addr)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown closes all connections and stops the listener.
func (s *Server) Shutdown() {
	s.clientsMu.Lock()
	for _, c := range s.clients {
		c.Close()
	}
	s.clients = make(map[string]*Client)
	s.clientsMu.Unlock()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}
	_ = s.redis.Close()
}

// handleWebSocket upgrades the connection and runs the client loop.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := NewClient(s, conn)
	s.registerClient(client)

	go client.Run()
}

// handleHealth is a plain liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, client.ID)
}

// OnlineCount returns the number of connected clients.
func (s *Server) OnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}
