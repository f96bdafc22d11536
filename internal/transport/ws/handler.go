package ws

import (
	"net/http"

	"nhooyr.io/websocket"

	"pet-care-hub/internal/middleware"
)

// Handler acepta el upgrade. La autenticación ya la resolvió AuthContext
// (Bearer o ?token= porque el browser no manda headers en el handshake).
func Handler(hub *Hub, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			hub.log.Warn("ws accept error", map[string]any{"error": err})
			return
		}

		client := newClient(hub, conn, claims.UserID)
		hub.register(client)

		// El contexto del request vive mientras dure la conexión hijacked.
		ctx := r.Context()
		go client.writePump(ctx)
		client.readPump(ctx)
	}
}
