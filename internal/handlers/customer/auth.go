package customer

import (
	"errors"
	"log"
	"net/http"

	"boutique_back_end/internal/customer"
	"boutique_back_end/internal/middleware"
	"boutique_back_end/internal/session"
	"boutique_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// Handler expose les endpoints clients. secureCookie vaut vrai partout sauf
// en développement (cookie Secure).
type Handler struct {
	manager      *customer.Manager
	secureCookie bool
}

func NewHandler(manager *customer.Manager, secureCookie bool) *Handler {
	return &Handler{manager: manager, secureCookie: secureCookie}
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp crée un compte client
func (h *Handler) SignUp(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide"})
		return
	}

	view, err := h.manager.SignUp(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, customer.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'email' et 'password' sont obligatoires"})
		return
	case errors.Is(err, customer.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	case err != nil:
		log.Printf("❌ Erreur sign-up: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	// E-mail de bienvenue en arrière-plan, sans bloquer la réponse
	go func(email string) {
		if err := utils.SendWelcomeEmail(email); err != nil {
			log.Printf("⚠️ E-mail de bienvenue non envoyé à %s: %v", email, err)
		}
	}(view.Email)

	c.JSON(http.StatusOK, view)
}

// SignIn vérifie les identifiants et pose le cookie de session
func (h *Handler) SignIn(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide"})
		return
	}

	view, token, err := h.manager.SignIn(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, customer.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'email' et 'password' sont obligatoires"})
		return
	case errors.Is(err, customer.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
		return
	case errors.Is(err, customer.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	case errors.Is(err, session.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service de session indisponible"})
		return
	case err != nil:
		log.Printf("❌ Erreur sign-in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	// Cookie de session : HttpOnly, Secure hors développement, pas de
	// Max-Age (la session vit jusqu'au sign-out)
	c.SetCookie(middleware.CookieName, token, 0, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, view)
}

// SignOut révoque la session courante. 204 quel que soit l'état antérieur :
// un token déjà invalide reste un succès.
func (h *Handler) SignOut(c *gin.Context) {
	token := c.GetString(middleware.AuthTokenKey)
	if token == "" {
		token, _ = c.Cookie(middleware.CookieName)
	}

	var customerID gocql.UUID
	if id, ok := middleware.IdentityFromContext(c); ok {
		if parsed, err := gocql.ParseUUID(id); err == nil {
			customerID = parsed
		}
	}

	if err := h.manager.SignOut(c.Request.Context(), customerID, token); err != nil {
		if errors.Is(err, session.ErrStoreUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Service de session indisponible"})
			return
		}
		log.Printf("❌ Erreur sign-out: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}

// Authenticate retourne la vue publique du client connecté, ou null si la
// requête n'est pas authentifiée
func (h *Handler) Authenticate(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	customerID, err := gocql.ParseUUID(id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalide"})
		return
	}

	view, err := h.manager.ResolveIdentity(c.Request.Context(), customerID)
	switch {
	case errors.Is(err, customer.ErrUnauthorized):
		// token valide mais client disparu
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Client inconnu"})
		return
	case err != nil:
		log.Printf("❌ Erreur authenticate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, view)
}
