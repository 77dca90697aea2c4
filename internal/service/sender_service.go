package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/entities"
)

// SenderService composes the outgoing OTP and booking-confirmation messages
// and hands them to the SendGrid/Twilio senders.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendOTPEmail(toEmail, code string) error {
	emailData := entities.OTPEmailData{
		Code:          code,
		ExpiryMinutes: int(otpValidity.Minutes()),
		CurrentYear:   time.Now().Year(),
	}

	emailSubject := "Just My Rides | Registration Verification"
	plainTextBody := fmt.Sprintf(
		"Hello,\n\nUse the following One-Time Password (OTP) to verify your account. "+
			"This OTP is valid for %d minutes.\n\n%s\n\n"+
			"If you did not request this OTP, please ignore this email. Your account remains secure.\n\n"+
			"Just My Rides. All rights reserved.",
		emailData.ExpiryMinutes, emailData.Code,
	)

	htmlBody := renderTemplate("otp_email.html", emailData)

	return SendEmailWithSendGrid(toEmail, "", emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendOTPSMS(toPhone, code string) error {
	message := fmt.Sprintf("Just My Rides: %s is your verification code. Valid for %d minutes.",
		code, int(otpValidity.Minutes()))
	return SendSMS(toPhone, message)
}

// SendBookingConfirmation mails the frozen quote to the customer. Delivery is
// asynchronous; a failure is logged, never surfaced to the booking flow.
func (s *SenderService) SendBookingConfirmation(toEmail string, data entities.BookingEmailData) {
	emailSubject := fmt.Sprintf("Your Just My Rides booking is confirmed - %s", data.VehicleName)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour ride is successfully booked.\n\n"+
			"Booking Details:\n"+
			"Vehicle: %s\n"+
			"Pickup: %s\n"+
			"Drop: %s\n"+
			"Duration: %s\n"+
			"Location: %s\n"+
			"Grand Total: %s\n\n"+
			"Thank you for choosing Just My Rides.\n\n"+
			"Just My Rides. All rights reserved.",
		data.UserName, data.VehicleName, data.PickupFormatted, data.DropFormatted,
		data.Duration, data.Location, data.Total,
	)

	htmlBody := renderTemplate("booking_email.html", data)

	go func(toEmail, userName, subject, plainBody, htmlBodyContent string) {
		errEmail := SendEmailWithSendGrid(toEmail, userName, subject, plainBody, htmlBodyContent)
		if errEmail != nil {
			log.Printf("ALERT (async): Failed to send confirmation email for %s booking: %v", data.VehicleName, errEmail)
		}
	}(toEmail, data.UserName, emailSubject, plainTextBody, htmlBody)
}

func renderTemplate(name string, data interface{}) string {
	tmplPath := filepath.Join("internal", "templates", name)
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Error parsing email template (%s): %v", tmplPath, err)
		return ""
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, data); err != nil {
		log.Printf("ALERT: Error executing email template %s: %v", name, err)
		return ""
	}
	return htmlBodyBuffer.String()
}
