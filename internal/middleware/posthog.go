package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are probes and scrapes, not user actions.
var untrackedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// trackedQueryParams are copied onto the event so planning usage (export
// format, horizon, toggles) shows up in analytics. Free-text search is not.
var trackedQueryParams = []string{
	"format",
	"from",
	"to",
	"includeFixedCosts",
	"includePayroll",
	"includeSimulations",
	"sort",
}

// PosthogMiddleware sends one event per successful authenticated request.
func PosthogMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !client.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		// POST "/api/v1/bookings/:id" -> "post_api_v1_bookings_id"; unmatched routes have no name.
		eventName := eventNameFor(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		client.Enqueue(userID, eventName, eventProperties(c))
	}
}

func eventProperties(c *gin.Context) map[string]any {
	props := map[string]any{
		"method":      c.Request.Method,
		"route":       c.FullPath(),
		"status_code": c.Writer.Status(),
	}
	if id := c.Param("id"); id != "" {
		props["resource_id"] = id
	}
	query := c.Request.URL.Query()
	for _, key := range trackedQueryParams {
		if v := query.Get(key); v != "" {
			props[key] = v
		}
	}
	return props
}

func eventNameFor(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ToLower(method) + "_" + name
}
