package handlers

import (
	"net/http"
	"sync"

	intconfig "backoffice/internal/config"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	Respond(c, http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		RespondError(c, http.StatusInternalServerError, "database not connected", nil)
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM reservations").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "database query failed", err)
		return
	}
	Respond(c, http.StatusOK, gin.H{"reservations_in_db": count})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		RespondError(c, http.StatusServiceUnavailable, "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method": rt.Method,
			"path":   rt.Path,
		})
	}
	Respond(c, http.StatusOK, gin.H{"routes": out})
}
