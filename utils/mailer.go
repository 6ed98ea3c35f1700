package utils

import (
	"fmt"

	"sfa-app/config"

	"gopkg.in/gomail.v2"
)

// SendDocumentNotification emails the configured recipients when a van
// inventory document is posted.
func SendDocumentNotification(toEmails []string, documentNo string, loadingType string) error {
	action := "Load"
	if loadingType == "U" {
		action = "Unload"
	}

	subject := "🚚 Van Inventory " + action + " " + documentNo
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Van inventory document posted</h3>
				<p>Document No: <strong>%s</strong></p>
				<p>Operation: <strong>%s</strong></p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, documentNo, action)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	return nil
}
