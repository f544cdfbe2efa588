package middleware

import (
	"net/http"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils"
	"github.com/gin-gonic/gin"
)

// usageEvents maps "METHOD route" to the event recorded when it succeeds for a signed-in user.
var usageEvents = map[string]string{
	"POST /api/journal/add":                    "journal_entry_added",
	"PATCH /api/journal/update-entry/:id":      "journal_entry_updated",
	"DELETE /api/journal/:entryId":             "journal_entry_deleted",
	"GET /api/journal/generate-pdf/:monthYear": "journal_pdf_generated",
	"PATCH /api/user/update-profile":           "profile_updated",
}

// UsageEvents records successful journal and profile actions to sink.
func UsageEvents(sink utils.EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if sink == nil || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		event, ok := usageEvents[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{"status_code": c.Writer.Status()}
		for _, p := range c.Params {
			props[p.Key] = p.Value
		}
		sink.Enqueue(userID, event, props)
	}
}
