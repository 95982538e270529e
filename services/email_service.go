package services

import (
	"fmt"
	"sync"

	"atelier_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.APIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendRepairReceivedEmail confirms the intake of a device for repair
func (es *EmailService) SendRepairReceivedEmail(email, name, repairUid string, priceCents int64) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #2C3E50; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.highlight { font-size: 18px; font-weight: bold; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
				.divider { margin: 30px 0; border-top: 2px solid #ddd; }
			</style>
		</head>
		<body>
			<div class="container">
				<!-- French Version -->
				<div class="header">
					<h1>Réparation enregistrée</h1>
				</div>
				<div class="content">
					<p>Bonjour %s,</p>
					<p>Nous avons bien reçu votre appareil. Votre numéro de suivi est :</p>
					<p class="highlight">%s</p>
					<p>Devis estimé : <strong>%s</strong></p>
					<p>Nous vous préviendrons dès que la réparation sera terminée.</p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>Repair registered</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>We have received your device. Your tracking number is:</p>
					<p class="highlight">%s</p>
					<p>Estimated quote: <strong>%s</strong></p>
					<p>We will notify you as soon as the repair is finished.</p>
				</div>

				<div class="footer">
					<p>Atelier Réparation</p>
				</div>
			</div>
		</body>
		</html>
	`, name, repairUid, FormatEuros(priceCents), name, repairUid, FormatEuros(priceCents))

	subject := fmt.Sprintf("Réparation %s enregistrée / Repair %s registered", repairUid, repairUid)

	return es.SendEmail([]string{email}, subject, emailBody)
}

// SendRepairReadyEmail notifies a client that the device can be picked up
func (es *EmailService) SendRepairReadyEmail(email, name, repairUid string, priceCents int64) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #27AE60; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.highlight { font-size: 18px; font-weight: bold; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
				.divider { margin: 30px 0; border-top: 2px solid #ddd; }
			</style>
		</head>
		<body>
			<div class="container">
				<!-- French Version -->
				<div class="header">
					<h1>Votre appareil est prêt</h1>
				</div>
				<div class="content">
					<p>Bonjour %s,</p>
					<p>La réparation <strong>%s</strong> est terminée. Vous pouvez venir récupérer votre appareil.</p>
					<p>Montant à régler : <span class="highlight">%s</span></p>
				</div>

				<div class="divider"></div>

				<!-- English Version -->
				<div class="header">
					<h1>Your device is ready</h1>
				</div>
				<div class="content">
					<p>Hello %s,</p>
					<p>Repair <strong>%s</strong> is finished. You can come pick up your device.</p>
					<p>Amount due: <span class="highlight">%s</span></p>
				</div>

				<div class="footer">
					<p>Atelier Réparation</p>
				</div>
			</div>
		</body>
		</html>
	`, name, repairUid, FormatEuros(priceCents), name, repairUid, FormatEuros(priceCents))

	subject := fmt.Sprintf("Réparation %s prête / Repair %s ready", repairUid, repairUid)

	return es.SendEmail([]string{email}, subject, emailBody)
}

// FormatEuros renders integer cents as a euro amount, e.g. 12450 -> "124,50 €"
func FormatEuros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d €", sign, cents/100, cents%100)
}
