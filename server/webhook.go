package server

import (
	"io"
	"net/http"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// itemIDPaths covers the shapes Emby's webhook plugin has shipped across
// versions: the item id nested under "Item.Id", or flattened to a
// top-level "ItemId" when the notification template only forwards
// scalar fields.
var itemIDPaths = []string{"Item.Id", "ItemId"}

// ItemAddedWebhook receives Emby's library.new notification and runs it
// through HandleItemAdded. It reads the body with gjson rather than a
// fixed struct since the webhook plugin's payload shape is configurable
// per-server. An unparseable or irrelevant event is acknowledged, not
// rejected, since Emby does not retry on non-2xx and we would rather
// drop a malformed notification than wedge the webhook.
func (s Server) ItemAddedWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("webhook: failed to read payload", zap.Error(err))
			writeResponse(w, http.StatusOK, GenericResponse{Response: "ignored"})
			return
		}

		if !gjson.ValidBytes(body) {
			log.Debug("webhook: invalid json payload")
			writeResponse(w, http.StatusOK, GenericResponse{Response: "ignored"})
			return
		}

		parsed := gjson.ParseBytes(body)
		var itemID string
		for _, path := range itemIDPaths {
			if v := parsed.Get(path); v.Exists() && v.String() != "" {
				itemID = v.String()
				break
			}
		}

		if itemID == "" {
			writeResponse(w, http.StatusOK, GenericResponse{Response: "ignored"})
			return
		}

		if err := s.manager.HandleItemAdded(r.Context(), itemID); err != nil {
			log.Error("webhook: item-added handling failed", zap.String("emby_item_id", itemID), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}
