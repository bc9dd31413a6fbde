// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the inkyear API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, chatClient)

# Endpoints

Health:

	GET /health

Ink collection:

	GET  /inks         - List cached collection
	POST /inks/refresh - Fetch from catalog and recache

Calendar and themes:

	GET    /calendar/{year}         - Year summary
	GET    /calendar/{year}/{month} - Month cells and theme
	POST   /themes                  - Set month theme
	DELETE /themes/{month}          - Clear month theme

Assignment mutations:

	POST   /assignments                - Assign ink to date
	DELETE /assignments/{date}         - Unassign date
	POST   /assignments/move           - Move between dates
	POST   /assignments/swap           - Swap two dates
	POST   /assignments/randomize      - Two-phase fill of the year
	DELETE /assignments/month/{month}  - Clear a month's session tier

Session persistence:

	GET  /session               - Session assignments and themes
	POST /session/clear         - Drop the session tier
	POST /session/commit/{date} - Pin to the catalog (protects the date)

Gesture surface (requires X-Session-Token, see POST /gesture/token):

	POST /gesture/token
	POST /gesture/drag/start|enter|drop|cancel
	POST /gesture/picker/populate
	POST /gesture/picker/key

Chat assistant:

	POST /chat
	GET  /chat/history

# Handler Initialization

The router creates handler instances with dependency injection:

	inkHandler := handlers.NewInkHandler(store)
	...
	chatHandler := handlers.NewChatHandler(store, chatClient)

All handlers share one Store; the chat client may be nil, which keeps
the rest of the API working without a model key.
*/
package router
