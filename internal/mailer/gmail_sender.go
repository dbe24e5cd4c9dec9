package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/deartime/deartime-BE/internal/otp"
	"github.com/deartime/deartime-BE/internal/util"
	"github.com/redis/go-redis/v9"
	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587

	senderEmailName = "DearTime"
)

// EmailHeader carries the addressing of one outgoing message.
type EmailHeader struct {
	Subject string
	To      []string
}

type GmailSender struct {
	client     *mail.Client
	config     util.Config
	otpService *otp.OTPService
}

func NewGmailSender(username, password string, config util.Config, redisDb *redis.Client) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client: client,
		config: config,
		otpService: otp.NewOTPService(redisDb,
			otp.WithPrefix("otp:email"),
		),
	}, nil
}

// SendOTP generates a verification code for the first recipient and mails it.
func (sender *GmailSender) SendOTP(
	header EmailHeader,
) (code string, createdAt time.Time, expiresAt time.Time, err error) {
	msg := mail.NewMsg()

	err = msg.FromFormat(senderEmailName, sender.config.GmailSMTPUsername)
	if err != nil {
		return "", time.Time{}, time.Time{}, fmt.Errorf("failed to set From address: %w", err)
	}

	msg.Subject(header.Subject)

	if err = msg.To(header.To...); err != nil {
		return "", time.Time{}, time.Time{}, fmt.Errorf("failed to set To address: %w", err)
	}

	code, createdAt, expiresAt, err = sender.otpService.GenerateOTP(context.Background(), header.To[0])
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	body := fmt.Sprintf("Your OTP code is: %s", code)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err = sender.client.DialAndSend(msg); err != nil {
		return "", time.Time{}, time.Time{}, fmt.Errorf("failed to send email: %w", err)
	}

	return code, createdAt, expiresAt, nil
}

func (sender *GmailSender) VerifyOTP(
	ctx context.Context,
	email string,
	code string,
) (bool, error) {
	ok, err := sender.otpService.VerifyOTP(ctx, email, code)
	if err != nil {
		return false, err
	}

	if !ok {
		return false, fmt.Errorf("invalid OTP")
	}

	return true, nil
}
