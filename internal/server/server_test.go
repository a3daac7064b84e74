package server_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pf9/region-wizard/internal/config"
	"github.com/pf9/region-wizard/internal/server"
)

var _ = Describe("Server", func() {
	var cfg *config.Configuration

	BeforeEach(func() {
		var err error
		cfg, err = config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg.Server.Mode = "dev"
	})

	register := func(router *gin.RouterGroup) {
		router.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"pong": true})
		})
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})
	}

	serve := func(srv *server.Server, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("should mount handlers under /api/v1", func() {
		srv, err := server.NewServer(cfg, register)
		Expect(err).NotTo(HaveOccurred())

		w := serve(srv, "/api/v1/ping")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"pong": true}`))
	})

	It("should answer unknown routes with a JSON 404", func() {
		srv, err := server.NewServer(cfg, register)
		Expect(err).NotTo(HaveOccurred())

		w := serve(srv, "/ping")

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"error": "not found"}`))
	})

	It("should recover from a panicking handler", func() {
		srv, err := server.NewServer(cfg, register)
		Expect(err).NotTo(HaveOccurred())

		w := serve(srv, "/api/v1/panic")

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("should stop gracefully", func() {
		// Arrange: grab a free port
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		cfg.Server.Address = l.Addr().String()
		Expect(l.Close()).To(Succeed())

		srv, err := server.NewServer(cfg, register)
		Expect(err).NotTo(HaveOccurred())

		done := make(chan error, 1)
		go func() {
			done <- srv.Start(context.Background())
		}()

		// Act
		Eventually(func() error {
			resp, err := http.Get("http://" + cfg.Server.Address + "/api/v1/ping")
			if err == nil {
				_ = resp.Body.Close()
			}
			return err
		}).WithTimeout(5 * time.Second).Should(Succeed())

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		Expect(srv.Stop(ctx)).To(Succeed())

		// Assert
		Eventually(done).WithTimeout(2 * time.Second).Should(Receive(BeNil()))
	})
})
