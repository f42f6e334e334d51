package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"onboarding/internal/config"
	"onboarding/internal/platform/logger"
)

type ServerTestSuite struct {
	suite.Suite
	cfg *config.HttpConfig
}

func (s *ServerTestSuite) SetupTest() {
	s.cfg = testHttpConfig()
	s.cfg.Server.Host = "127.0.0.1"
	s.cfg.Server.Port = 0
	s.cfg.Server.ShutdownTimeout = time.Second
}

func pong(w http.ResponseWriter, _ *http.Request) {
	_, _ = io.WriteString(w, "pong")
}

func (s *ServerTestSuite) start(handler http.Handler) *Server {
	server := NewServer(s.cfg, logger.NewNop(), handler)
	s.Require().NoError(server.Start(context.Background()))
	s.T().Cleanup(func() { _ = server.Stop(context.Background()) })
	return server
}

func (s *ServerTestSuite) TestNewServer() {
	s.cfg.Server.Host = "localhost"
	s.cfg.Server.Port = 8080
	handler := http.NewServeMux()

	server := NewServer(s.cfg, logger.NewNop(), handler)

	s.Assert().Equal("localhost:8080", server.server.Addr)
	s.Assert().Equal("localhost:8080", server.Addr())
	s.Assert().Equal(handler, server.server.Handler)
	s.Assert().Equal(30*time.Second, server.server.ReadTimeout)
	s.Assert().Equal(30*time.Second, server.server.WriteTimeout)
	s.Assert().Equal(2*time.Minute, server.server.IdleTimeout)
	s.Assert().Equal(time.Second, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestNewServer_EmptyHost() {
	s.cfg.Server.Host = ""
	s.cfg.Server.Port = 9000

	s.Assert().Equal(":9000", NewServer(s.cfg, logger.NewNop(), nil).server.Addr)
}

func (s *ServerTestSuite) TestStart_ServesRequests() {
	server := s.start(http.HandlerFunc(pong))

	resp, err := http.Get("http://" + server.Addr())
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal("pong", string(body))
}

func (s *ServerTestSuite) TestStart_PortInUse() {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer func() { _ = taken.Close() }()

	s.cfg.Server.Port = taken.Addr().(*net.TCPAddr).Port
	server := NewServer(s.cfg, logger.NewNop(), http.HandlerFunc(pong))

	s.Assert().Error(server.Start(context.Background()))
}

func (s *ServerTestSuite) TestStop_RefusesNewConnections() {
	server := s.start(http.HandlerFunc(pong))
	addr := server.Addr()

	s.Require().NoError(server.Stop(context.Background()))

	_, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
	s.Assert().Error(err)
}

func (s *ServerTestSuite) TestStop_WaitsForInFlightRequest() {
	release := make(chan struct{})
	started := make(chan struct{})
	server := s.start(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		pong(w, r)
	}))

	result := make(chan error, 1)
	go func() {
		resp, err := http.Get("http://" + server.Addr())
		if err == nil {
			_ = resp.Body.Close()
		}
		result <- err
	}()
	<-started

	stopped := make(chan error, 1)
	go func() { stopped <- server.Stop(context.Background()) }()

	select {
	case <-stopped:
		s.Fail("Stop returned while a request was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	s.Assert().NoError(<-result)
	s.Assert().NoError(<-stopped)
}

func (s *ServerTestSuite) TestStop_TimesOut() {
	s.cfg.Server.ShutdownTimeout = 20 * time.Millisecond
	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	server := s.start(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		close(started)
		<-release
	}))

	go func() {
		resp, err := http.Get("http://" + server.Addr())
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-started

	s.Assert().ErrorIs(server.Stop(context.Background()), context.DeadlineExceeded)
}

func (s *ServerTestSuite) TestStop_BeforeStart() {
	s.Assert().NoError(NewServer(s.cfg, logger.NewNop(), nil).Stop(context.Background()))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
