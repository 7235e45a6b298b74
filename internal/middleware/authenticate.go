package middleware

import (
	"errors"
	"net/http"

	"boutique_back_end/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName est le nom du cookie portant le token de session
	CookieName = "authToken"

	// Clés du contexte Gin posées par Authenticate
	IdentityKey  = "customer_id"
	AuthTokenKey = "auth_token"
)

// Authenticate résout le cookie authToken en identité via le store de
// sessions, une fois par requête, avant tout handler. Cookie absent ou token
// inconnu : la requête continue sans identité, beaucoup de routes sont
// publiques et les handlers décident eux-mêmes. Store injoignable en
// revanche : 500, pour ne jamais confondre "déconnecté" et "en panne".
// Ne mute jamais le store.
func Authenticate(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		payload, err := sessions.Get(c.Request.Context(), token)
		if errors.Is(err, session.ErrNotFound) {
			// token expiré ou révoqué : requête non authentifiée, pas une erreur
			c.Next()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Service de session indisponible"})
			c.Abort()
			return
		}

		c.Set(IdentityKey, payload.CustomerID)
		c.Set(AuthTokenKey, token)
		c.Next()
	}
}

// IdentityFromContext retourne l'id client posé par Authenticate, ou faux si
// la requête n'est pas authentifiée
func IdentityFromContext(c *gin.Context) (string, bool) {
	id := c.GetString(IdentityKey)
	return id, id != ""
}
