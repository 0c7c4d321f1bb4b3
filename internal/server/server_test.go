package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/handler"
	myGRPC "github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/handler/grpc"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCPortBusy(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(logger.Nop())}
	_, err = NewServer(handlers, config.Server{GRPCAddress: busy.Addr().String()}, logger.Nop())

	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	grpcSrv, err := newGRPCServer(myGRPC.NewHandler(logger.Nop()), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	s := &server{
		httpServer: newHTTPServer(router, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		gRPCServer: grpcSrv,
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servers did not stop")
	}
}

func TestRun_ReturnsServerFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(router, config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	assert.ErrorContains(t, err, "HTTP server ListenAndServe")
}
