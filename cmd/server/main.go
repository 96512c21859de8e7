package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"contactform-backend/internal/config"
	"contactform-backend/internal/form"
	"contactform-backend/internal/handler"
	"contactform-backend/internal/http/router"
	"contactform-backend/internal/mail"
	"contactform-backend/internal/recaptcha"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

func main() {
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

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(contact),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting contact form server on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Failed to start server:", err)
	}
}
