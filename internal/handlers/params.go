package handlers

import "net/http"

// getParam reads a path parameter whether the router stored it with a
// leading colon (pat style), as a plain query value, or via the net/http
// PathValue API.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if v := r.URL.Query().Get(":" + name); v != "" {
		return v
	}
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return r.PathValue(name)
}
