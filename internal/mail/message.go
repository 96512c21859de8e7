package mail

import (
	"fmt"

	"contactform-backend/models"
)

// BuildMessage composes the notification for a verified submission
func BuildMessage(siteName string, sub *models.SubmissionRequest) models.NotificationMessage {
	return models.NotificationMessage{
		Subject: "Contact form on " + siteName,
		Body: fmt.Sprintf("Somebody has used the contact form on %s in order to send the following message\n"+
			"\nIP: %s"+
			"\nName: %s"+
			"\nEmail: %s"+
			"\nBody: %s",
			siteName, sub.SourceIP, sub.Name, sub.Email, sub.Body),
		ReplyTo: sub.Email,
	}
}
