// Package handler provides HTTP request handlers for logmesh.
package handler

import "net/http"

// handleConfig handles GET /admin/v1/config.
// Secrets are masked; the handler only ever holds a sanitized copy.
func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.cfg)
}

// handleNode handles GET /admin/v1/node.
func (h *Handler) handleNode(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, &NodeResponse{
		NodeID:     h.nodeID,
		NodeIDFile: h.cfg.NodeIDFile,
	})
}
