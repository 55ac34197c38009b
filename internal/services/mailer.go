package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"vitrine_back_end/internal/models"
)

// SendOrderConfirmation envoie le reçu de commande par e-mail (best-effort).
// Appelé dans une goroutine depuis le checkout ; un échec est logué, jamais
// renvoyé au client.
func SendOrderConfirmation(receipt models.Receipt) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@vitrine.local"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		log.Println("❌ Adresse expéditeur invalide:", err)
		return
	}
	if err := msg.To(receipt.CustomerEmail); err != nil {
		log.Println("❌ Adresse destinataire invalide:", err)
		return
	}
	msg.Subject(fmt.Sprintf("Confirmation de commande #%d", receipt.OrderID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(receipt))

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("❌ Erreur création client SMTP:", err)
		return
	}

	log.Println("📤 Envoi du reçu de commande à", receipt.CustomerEmail)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("⚠️ Échec envoi e-mail de confirmation:", err)
	}
}

func orderConfirmationHTML(receipt models.Receipt) string {
	itemsHTML := ""
	for _, item := range receipt.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f</td>
				<td>%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Confirmation de commande</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Merci pour votre commande, %s !</h2>
		<p>Votre commande <strong>#%d</strong> du %s a bien été enregistrée.</p>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr style="text-align: left; border-bottom: 1px solid #ddd;">
				<th>Produit</th><th>Qté</th><th>Prix</th><th>Sous-total</th>
			</tr>
			%s
		</table>
		<p style="font-size: 18px;"><strong>Total : %.2f</strong></p>
	</div>
</body>
</html>`, receipt.CustomerName, receipt.OrderID, receipt.OrderDate, itemsHTML, receipt.Total)
}
