package mailing

import (
	"UnityGrow-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Mailer is what the user service depends on; the SMTP implementation below
// is swapped for a fake in tests.
type Mailer interface {
	SendOTPEmail(toEmail string, otp string) error
}

type smtpMailer struct{}

func NewMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) SendOTPEmail(toEmail string, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>OTP Verification</h2>
			<p>Hello,</p>
			<p>Your OTP is:</p>
			<h1 style="color: #2c3e50;">%s</h1>
			<p>This OTP is valid for <strong>10 minutes</strong>.</p>
			<p style="margin-top: 30px;">If you did not request this, please ignore this email.</p>
		</div>`, otp)

	return SendMail(toEmail, "Your OTP Verification Code", body)
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}
