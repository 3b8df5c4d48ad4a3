package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAdoptionApproved(toEmail, animalName string) error
	SendAdoptionRejected(toEmail, animalName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendAdoptionApproved(toEmail, animalName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your adoption request for %s was approved!", animalName))

	profileLink := fmt.Sprintf("%s/profile", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Great news from PawRescue!</h2>
			<p>Your adoption request for <strong>%s</strong> has been approved.</p>
			<p>Our team will reach out shortly to arrange the handover.</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Your Requests</a>
			<p>Thank you for giving a rescue a home.</p>
		</div>
	`, animalName, profileLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send approval mail to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Approval mail sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendAdoptionRejected(toEmail, animalName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Update on your adoption request for %s", animalName))

	browseLink := fmt.Sprintf("%s/animals", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Update from PawRescue</h2>
			<p>Unfortunately your adoption request for <strong>%s</strong> was not approved this time.</p>
			<p>Many other animals are still looking for a home:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Browse Animals</a>
			<p>Thank you for caring.</p>
		</div>
	`, animalName, browseLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send rejection mail to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Rejection mail sent to %s\n", toEmail)
	return nil
}
