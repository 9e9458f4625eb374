package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/craftctl/internal/registry"
)

// Config is the runtime configuration for the protocol endpoint.
type Config struct {
	ListenAddr      string
	AdminListenAddr string
	Status          StatusConfig
}

func DefaultConfig() Config {
	return Config{
		ListenAddr: "127.0.0.1:25565",
		Status:     DefaultStatusConfig(),
	}
}

// Service owns the listener, the shared catalogs, and the set of live
// connections. Catalogs are loaded once here and shared read-only.
type Service struct {
	cfg     Config
	handler *Handler
	catalog *registry.Catalog
	tags    *registry.TagTable

	startedAt time.Time

	connsMu sync.Mutex
	conns   map[net.Conn]struct{}

	clientCount atomic.Int64
}

// NewService loads the bundled catalogs and builds the service. A
// catalog parse failure is fatal here, before any connection exists.
func NewService(cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	cfg.Status = cfg.Status.withDefaults()

	catalog, err := registry.LoadCatalog()
	if err != nil {
		return nil, err
	}
	tags, err := registry.LoadTags()
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		handler:   NewHandler(catalog, tags, cfg.Status),
		catalog:   catalog,
		tags:      tags,
		startedAt: time.Now(),
		conns:     make(map[net.Conn]struct{}),
	}, nil
}

// Run blocks until signal shutdown or a listener error.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
	return s.Serve(ctx, ln)
}

// Serve accepts connections on an existing listener until ctx is done,
// spawning one goroutine per connection. Connections share nothing
// mutable; the catalogs they read are immutable.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()
	go func() {
		<-ctx.Done()
		s.closeAllConns()
		_ = ln.Close()
	}()

	for {
		nc, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		log.Info().Str("remote", nc.RemoteAddr().String()).Msg("new connection")
		s.trackConn(nc)
		go s.handleConn(nc)
	}
}

func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) StartedAt() time.Time {
	return s.startedAt
}

// ActiveConnections reports how many connection goroutines are live.
func (s *Service) ActiveConnections() int64 {
	return s.clientCount.Load()
}

func (s *Service) Catalog() *registry.Catalog {
	return s.catalog
}

func (s *Service) Tags() *registry.TagTable {
	return s.tags
}

func (s *Service) trackConn(nc net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	s.conns[nc] = struct{}{}
}

func (s *Service) untrackConn(nc net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	delete(s.conns, nc)
}

func (s *Service) closeAllConns() {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	for nc := range s.conns {
		_ = nc.Close()
		delete(s.conns, nc)
	}
}
