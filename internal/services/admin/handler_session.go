package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/venuedesk/internal/platform/eventbus"
	"github.com/louisbranch/venuedesk/internal/platform/requestctx"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/sessioncookie"
	sharedhtmx "github.com/louisbranch/venuedesk/internal/services/shared/htmx"
)

// handleLogout ends the console session. Open wizards of the session are
// dropped here and, through the session-ended event, in every other console
// process.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	ctx := r.Context()
	sessionID := requestctx.SessionIDFromContext(ctx)
	endedAt := h.now().UTC()

	if sessionID != "" {
		if err := h.sessions.RevokeConsoleSession(ctx, sessionID, endedAt); err != nil {
			log.Printf("revoke console session %s: %v", sessionID, err)
		}
		if dropped := h.wizards.DropSession(sessionID); dropped > 0 {
			log.Printf("closed %d wizard runs for session %s", dropped, sessionID)
		}
		h.publishSessionEnded(ctx, eventbus.SessionEnded{
			SessionID: sessionID,
			AdminID:   requestctx.AdminIDFromContext(ctx),
			EndedAt:   endedAt,
		})
	}

	sessioncookie.Clear(w, isHTTPS(r))
	target := h.logoutURL
	if target == "" {
		target = routepath.Root
	}
	sharedhtmx.Redirect(w, r, target)
}

func (h *Handler) publishSessionEnded(ctx context.Context, event eventbus.SessionEnded) {
	if h.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), directoryRequestTimeout)
	defer cancel()
	if err := h.events.PublishSessionEnded(ctx, event); err != nil {
		log.Printf("publish session ended: %v", err)
	}
}
