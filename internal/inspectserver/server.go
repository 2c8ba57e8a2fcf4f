// Package inspectserver serves a read-only HTTP view of the currently
// loaded service config: the load-balancing policy, the compiled call
// paths, and path resolution with the same wildcard fallback clients use.
package inspectserver

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/routekit/svcconfig/internal/snapshot"
)

type Server struct {
	current atomic.Pointer[snapshot.Snapshot]
}

func New(snap *snapshot.Snapshot) *Server {
	s := &Server{}
	s.current.Store(snap)
	return s
}

// Replace atomically swaps in a newly compiled snapshot. In-flight requests
// keep reading the snapshot they started with.
func (s *Server) Replace(snap *snapshot.Snapshot) {
	s.current.Store(snap)
}

// Handler builds the gin engine serving the inspection routes.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/config", func(c *gin.Context) {
		snap := s.current.Load()
		resp := gin.H{"paths": snap.Table.Paths()}
		if snap.HasPolicy {
			resp["loadBalancingPolicy"] = snap.Policy
		}
		c.JSON(http.StatusOK, resp)
	})

	r.GET("/lookup", func(c *gin.Context) {
		path := strings.TrimSpace(c.Query("path"))
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing path query parameter"})
			return
		}
		opts, ok := s.current.Load().Table.Lookup(path)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no method config for " + path})
			return
		}
		c.JSON(http.StatusOK, opts)
	})

	return r
}
