package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

type submitResponse struct {
	Status domain.Status      `json:"status"`
	Error  string             `json:"error"`
	Tweets []port.TweetStatus `json:"tweets,omitempty"`
}

// handleSubmitTweets attaches tweets to the campaign. The body is a JSON
// array of status ids or status links. On success it answers HTTP 204;
// otherwise the status of the first failing tweet, with the per-tweet
// outcomes in the body. Tweets before the failing one stay attached.
func (h *Handler) handleSubmitTweets(w http.ResponseWriter, r *http.Request) {
	var refs []string
	if err := json.NewDecoder(r.Body).Decode(&refs); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	status, tweets, err := h.svc.SubmitTweets(r.Context(), viewerID(r), chi.URLParam(r, "id"), refs)
	if err != nil {
		h.internalError(w, "submit tweets error", err)
		return
	}
	if status == domain.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, status.Code(), submitResponse{Status: status, Error: status.String(), Tweets: tweets})
}

// handleDeleteTweet detaches {tweetID} from campaign {id}.
func (h *Handler) handleDeleteTweet(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.DeleteTweet(r.Context(), viewerID(r), chi.URLParam(r, "id"), chi.URLParam(r, "tweetID"))
	if err != nil {
		h.internalError(w, "delete tweet error", err)
		return
	}
	writeStatus(w, status)
}
