package main

import (
	"context"
	"log"

	"contactform-backend/internal/config"
	"contactform-backend/internal/form"
	"contactform-backend/internal/handler"
	"contactform-backend/internal/mail"
	"contactform-backend/internal/recaptcha"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	contact := handler.NewContact(
		cfg,
		form.NewValidator(),
		recaptcha.NewVerifier(cfg.Recaptcha.Secret, cfg.Recaptcha.VerifyURL, cfg.Recaptcha.Timeout),
		mail.NewSESSender(ses.NewFromConfig(awsCfg)),
	)

	lambda.Start(contact.Handle)
}
