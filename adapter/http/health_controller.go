package http

import "net/http"

// HealthController answers liveness probes.
type HealthController struct{}

// NewHealthController creates the controller.
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Mount registers GET /health.
func (c *HealthController) Mount(r *Router) {
	r.Get("/health", c.Check)
}

func (c *HealthController) Check(w http.ResponseWriter, _ *http.Request) {
	Success(w, map[string]string{"status": "ok"})
}
