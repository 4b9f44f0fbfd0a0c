// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAffiliateApproved(toEmail, referralCode string) error
	SendAffiliateRejected(toEmail, reason string) error
	SendWithdrawPaid(toEmail string, amount float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendAffiliateApproved(toEmail, referralCode string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your affiliate account is approved!</h2>
			<p>Your referral code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>Share it to start earning commission on referred orders.</p>
		</div>
	`, referralCode)
	return s.send(toEmail, "Affiliate Account Approved", body)
}

func (s *emailService) SendAffiliateRejected(toEmail, reason string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Affiliate application update</h2>
			<p>Unfortunately your application was not approved.</p>
			<p>Reason: %s</p>
			<p>You may register again at any time.</p>
		</div>
	`, reason)
	return s.send(toEmail, "Affiliate Application Rejected", body)
}

func (s *emailService) SendWithdrawPaid(toEmail string, amount float64) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Withdrawal paid</h2>
			<p>Your withdrawal of <b>%.2f</b> has been transferred to your payment method on file.</p>
		</div>
	`, amount)
	return s.send(toEmail, "Withdrawal Paid", body)
}
