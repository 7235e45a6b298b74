package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SendWelcomeEmail envoie l'e-mail de bienvenue après inscription. Appelé en
// arrière-plan par le handler de sign-up, un échec ne bloque jamais la
// création du compte.
func SendWelcomeEmail(to string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		// SMTP non configuré (développement local) : on ne fait rien
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(getEnvOr("SMTP_FROM", "noreply@boutique.example")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Bienvenue sur la boutique")
	msg.SetBodyString(mail.TypeTextHTML, welcomeHTML(to))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de bienvenue à", to)
	return client.DialAndSend(msg)
}

func welcomeHTML(email string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Bienvenue</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Bienvenue !</h2>
		<p>Bonjour,</p>
		<p>Votre compte <strong>%s</strong> a bien été créé. Bonne visite sur la boutique.</p>
	</div>
</body>
</html>`, email)
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
