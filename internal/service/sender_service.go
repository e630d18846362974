package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"balneario/internal/daterange"
	"balneario/internal/db"
	"balneario/internal/entities"
	"balneario/internal/utils"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendReservationEmail composes and sends the booking email for a status
// change (confirmada, cancelada). Sending happens on a goroutine; a
// failure is logged and never fails the originating request.
func (s *SenderService) SendReservationEmail(group db.ReservationGroup, establishmentName, status string) {
	if group.ClientEmail == "" {
		return
	}

	emailData := entities.ReservationEmailData{
		ClientName:         group.ClientName,
		ReservationCode:    group.Code,
		EstablishmentName:  establishmentName,
		ServiceLabel:       utils.ServiceLabel(group.ServiceType),
		ResourceNumber:     group.ResourceNumber,
		StartDateFormatted: daterange.FormatISO(group.StartDate),
		EndDateFormatted:   daterange.FormatISO(group.EndDate),
		CurrentYear:        time.Now().UTC().Year(),
		Status:             status,
	}
	if group.TotalPrice != nil {
		emailData.TotalPriceFormatted = fmt.Sprintf("$%.2f", *group.TotalPrice)
	}

	emailSubject := fmt.Sprintf("Tu reserva en %s está %s - Código: %s", establishmentName, status, group.Code)
	plainTextBody := fmt.Sprintf(
		"Hola %s,\n\nTu reserva en %s está %s.\n\n"+
			"Detalles de la reserva:\n"+
			"Código de Reserva: %s\n"+
			"Servicio: %s (N° %d)\n"+
			"Desde: %s\n"+
			"Hasta: %s\n\n"+
			"Gracias por elegir %s.",
		emailData.ClientName, establishmentName, status,
		emailData.ReservationCode, emailData.ServiceLabel, emailData.ResourceNumber,
		emailData.StartDateFormatted, emailData.EndDateFormatted, establishmentName,
	)

	tmplPath := filepath.Join("internal", "templates", "reservation_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Error parsing HTML email template (%s): %v", tmplPath, err)
		return
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("ALERT: Error executing HTML email template for reservation %s: %v", emailData.ReservationCode, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, clientName, subject, plainBody, htmlBodyContent string) {
		errEmail := SendEmailWithSendGrid(toEmail, clientName, subject, plainBody, htmlBodyContent)
		if errEmail != nil {
			log.Printf("ALERT (async): Email delivery failed for reservation %s: %v", emailData.ReservationCode, errEmail)
		}
	}(group.ClientEmail, emailData.ClientName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendReservationSMS(group db.ReservationGroup, establishmentName, status string) {
	if group.ClientPhone == "" {
		return
	}

	smsMessage := fmt.Sprintf("%s: ¡Tu reserva %s está %s!\n%s del %s al %s.\nMás detalles en tu correo.",
		establishmentName, group.Code, status,
		utils.ServiceLabel(group.ServiceType),
		daterange.FormatISO(group.StartDate), daterange.FormatISO(group.EndDate),
	)

	go func(phone, message, code string) {
		if errSMS := SendSMS(phone, message); errSMS != nil {
			log.Printf("ALERT (async): SMS delivery failed for reservation %s: %v", code, errSMS)
		}
	}(group.ClientPhone, smsMessage, group.Code)
}
