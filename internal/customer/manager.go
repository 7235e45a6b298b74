package customer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/session"
	"boutique_back_end/internal/store"
	"boutique_back_end/internal/utils"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

var (
	ErrValidation         = errors.New("customer: champ requis manquant")
	ErrNotFound           = errors.New("customer: client introuvable")
	ErrAlreadyExists      = errors.New("customer: email déjà utilisé")
	ErrInvalidCredentials = errors.New("customer: email ou mot de passe incorrect")
	ErrUnauthorized       = errors.New("customer: identité introuvable")
)

// Manager orchestre sign-up, sign-in et sign-out. Il maintient la liste des
// tokens vivants sur la fiche client en miroir du store de sessions ; les
// deux écritures sont séquentielles et non transactionnelles, un crash entre
// les deux laisse un écart accepté (résolu au prochain sign-out).
type Manager struct {
	customers store.CustomerStore
	sessions  session.Store
	hasher    *utils.PasswordHasher
}

func NewManager(customers store.CustomerStore, sessions session.Store, hasher *utils.PasswordHasher) *Manager {
	return &Manager{customers: customers, sessions: sessions, hasher: hasher}
}

// SignUp crée un client avec une liste de sessions vide et retourne la vue
// publique, jamais le hash.
func (m *Manager) SignUp(ctx context.Context, email, password string) (*models.Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	_, err := m.customers.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	digest, err := m.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &models.Customer{
		ID:        gocql.UUID(uuid.New()),
		Email:     email,
		Password:  digest,
		Sessions:  []string{},
		CreatedAt: &now,
	}
	if err := m.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	view := c.PublicView()
	return &view, nil
}

// SignIn vérifie les identifiants, crée une session et retourne la vue
// publique avec le token. Le token est stocké côté store de sessions PUIS
// ajouté en tête de la liste du client (du plus récent au plus ancien) ; la
// liste est persistée avant de répondre, pas de fire-and-forget.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*models.Customer, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", ErrValidation
	}

	c, err := m.customers.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if !m.hasher.Verify(c.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, "", fmt.Errorf("génération du token: %w", err)
	}

	if err := m.sessions.Set(ctx, token, session.Payload{CustomerID: c.ID.String()}); err != nil {
		return nil, "", err
	}

	tokens := append([]string{token}, c.Sessions...)
	if err := m.customers.UpdateSessions(ctx, c.ID, tokens); err != nil {
		// La session existe déjà côté store : écart connu, on le signale
		log.Printf("⚠️ Session %s… créée mais liste client %s non persistée: %v", token[:8], c.ID, err)
		return nil, "", err
	}
	c.Sessions = tokens

	view := c.PublicView()
	return &view, token, nil
}

// SignOut révoque un token. Idempotent : un token inconnu ou déjà supprimé
// est quand même passé au Delete du store et reste un succès.
func (m *Manager) SignOut(ctx context.Context, customerID gocql.UUID, token string) error {
	if token != "" && customerID != (gocql.UUID{}) {
		c, err := m.customers.FindByID(ctx, customerID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// client disparu : on supprime quand même la session
		case err != nil:
			return err
		default:
			if remaining, found := removeToken(c.Sessions, token); found {
				if err := m.customers.UpdateSessions(ctx, customerID, remaining); err != nil {
					return err
				}
			}
		}
	}

	if token == "" {
		return nil
	}
	return m.sessions.Delete(ctx, token)
}

// ResolveIdentity charge la vue publique du client pointé par une session.
// Un token valide dont le client a disparu vaut ErrUnauthorized.
func (m *Manager) ResolveIdentity(ctx context.Context, customerID gocql.UUID) (*models.Customer, error) {
	c, err := m.customers.FindByID(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	view := c.PublicView()
	return &view, nil
}

func removeToken(tokens []string, token string) ([]string, bool) {
	found := false
	remaining := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == token {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	return remaining, found
}
