package health

import (
	"encoding/json"
	"net/http"
)

// Get is the liveness probe. It is wired outside the auth gate on purpose.
func Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
