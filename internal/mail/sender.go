// Package mail delivers contact notifications through Amazon SES.
package mail

import (
	"context"
	"fmt"
	"log"

	"contactform-backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

// SESAPI is the subset of the SES client used for delivery
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender sends notifications with a single SendEmail call
type SESSender struct {
	client SESAPI
}

// NewSESSender creates a sender backed by client
func NewSESSender(client SESAPI) *SESSender {
	return &SESSender{client: client}
}

// Send delivers msg from `from` to `to`. Any delivery failure is returned
// wrapped without further classification.
func (s *SESSender) Send(ctx context.Context, to, from string, msg models.NotificationMessage) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Source:           aws.String(from),
		ReplyToAddresses: replyToList(msg.ReplyTo),
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String(charset),
				Data:    aws.String(msg.Subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String(charset),
					Data:    aws.String(msg.Body),
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent successfully to %s, message id %s", to, aws.ToString(out.MessageId))
	return nil
}

func replyToList(replyTo string) []string {
	if replyTo == "" {
		return nil
	}
	return []string{replyTo}
}
