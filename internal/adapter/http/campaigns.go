package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"campaign-tracker/internal/core/domain"
)

// handleListCampaigns returns one page of the viewer's campaigns. It
// accepts optional `search`, `sort`, `page`, `pageSize` and `includeHidden`
// query parameters. Malformed numbers or booleans result in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q    = r.URL.Query()
		opts = domain.ListOptions{
			Search: q.Get("search"),
			Sort:   domain.Sort(q.Get("sort")),
		}
		err error
	)
	if v := q.Get("page"); v != "" {
		if opts.Page, err = strconv.Atoi(v); err != nil {
			http.Error(w, "invalid 'page'", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if opts.PageSize, err = strconv.Atoi(v); err != nil {
			http.Error(w, "invalid 'pageSize'", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("includeHidden"); v != "" {
		if opts.IncludeHidden, err = strconv.ParseBool(v); err != nil {
			http.Error(w, "invalid 'includeHidden'", http.StatusBadRequest)
			return
		}
	}

	views, err := h.svc.ListCampaigns(r.Context(), viewerID(r), opts)
	if err != nil {
		h.internalError(w, "list campaigns error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleGetCampaigns returns the campaigns named by the comma separated
// {id} path parameter.
func (h *Handler) handleGetCampaigns(w http.ResponseWriter, r *http.Request) {
	views, status, err := h.svc.GetCampaigns(r.Context(), viewerID(r), pathIDs(r, "id"))
	if err != nil {
		h.internalError(w, "get campaigns error", err)
		return
	}
	if !status.OK() {
		writeStatus(w, status)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleUpsertCampaign creates (201) or updates (200) a campaign and
// returns its id. Unknown body fields such as creator or permissions are
// ignored.
func (h *Handler) handleUpsertCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, status, err := h.svc.UpsertCampaign(r.Context(), viewerID(r), in)
	if err != nil {
		h.internalError(w, "upsert campaign error", err)
		return
	}
	if !status.OK() {
		writeStatus(w, status)
		return
	}
	h.writeJSON(w, status.Code(), map[string]string{"id": id})
}

// handleDeleteCampaigns deletes every named campaign or none of them.
func (h *Handler) handleDeleteCampaigns(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.DeleteCampaigns(r.Context(), viewerID(r), pathIDs(r, "id"))
	if err != nil {
		h.internalError(w, "delete campaigns error", err)
		return
	}
	writeStatus(w, status)
}

// handlePatchCampaigns hides (`?hide=true`) or unhides (`?unhide=true`)
// the named campaigns for the viewer.
func (h *Handler) handlePatchCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		ids = pathIDs(r, "id")
		err error
	)
	switch {
	case q.Get("hide") == "true":
		err = h.svc.HideCampaigns(r.Context(), viewerID(r), ids)
	case q.Get("unhide") == "true":
		err = h.svc.UnhideCampaigns(r.Context(), viewerID(r), ids)
	default:
		http.Error(w, "expected hide=true or unhide=true", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.internalError(w, "patch campaigns error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathIDs splits a comma separated path parameter, dropping empty items.
func pathIDs(r *http.Request, key string) []string {
	parts := strings.Split(chi.URLParam(r, key), ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeStatus answers with the status and no payload beyond its name.
func writeStatus(w http.ResponseWriter, status domain.Status) {
	if status == domain.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Error(w, status.String(), status.Code())
}

func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
