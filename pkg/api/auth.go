package api

import "github.com/gin-gonic/gin"

// extractAuthor resolves the acting user from reverse-proxy identity
// headers. Deployments put the API behind an authenticating proxy
// (oauth2-proxy or similar) that injects the user identity; outside such
// a proxy the fallback attributes actions to a generic client.
func extractAuthor(c *gin.Context) string {
	for _, h := range []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"} {
		if v := c.GetHeader(h); v != "" {
			return v
		}
	}
	return "api-client"
}
