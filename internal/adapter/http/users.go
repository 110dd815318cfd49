package httpadapter

import "net/http"

// handleResolveUsers returns profiles for the comma separated screen names.
func (h *Handler) handleResolveUsers(w http.ResponseWriter, r *http.Request) {
	names := pathIDs(r, "screenNames")
	if len(names) == 0 {
		http.Error(w, "missing screen names", http.StatusBadRequest)
		return
	}
	users, err := h.svc.ResolveUsers(r.Context(), names)
	if err != nil {
		h.internalError(w, "resolve users error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}
