package handler

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/internal/cache"
	"supercopa.app/backend/pkg/response"
)

var shellContentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".json": "application/manifest+json",
	".svg":  "image/svg+xml",
	".js":   "text/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
}

// ShellHandler serves the app shell cache-first, with the cached document
// root as the offline page when both cache and origin miss.
type ShellHandler struct {
	manager *cache.Manager
}

func NewShellHandler(manager *cache.Manager) *ShellHandler {
	return &ShellHandler{manager: manager}
}

func (h *ShellHandler) Serve(c *gin.Context) {
	reqPath := c.Request.URL.Path

	body, err := h.manager.Resolve(c.Request.Context(), reqPath)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.Data(http.StatusOK, contentTypeFor(reqPath), body)
}

func (h *ShellHandler) Status(c *gin.Context) {
	response.OK(c, gin.H{
		"version": h.manager.Version(),
		"state":   h.manager.State().String(),
	})
}

// Refresh re-installs the shell from the origin and activates the new
// namespace, retiring every older one.
func (h *ShellHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.manager.Install(ctx); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.manager.Activate(ctx); err != nil {
		response.Error(c, err)
		return
	}

	h.Status(c)
}

func contentTypeFor(reqPath string) string {
	if reqPath == "/" {
		return shellContentTypes[".html"]
	}
	if ct, ok := shellContentTypes[path.Ext(reqPath)]; ok {
		return ct
	}
	return "application/octet-stream"
}
