// Package handler routes contact form requests through validation,
// reCAPTCHA verification and notification delivery.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"contactform-backend/internal/config"
	"contactform-backend/internal/http/response"
	"contactform-backend/internal/mail"
	"contactform-backend/internal/recaptcha"
	"contactform-backend/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

// FormValidator parses a raw form body into a submission
type FormValidator interface {
	Validate(sourceIP, rawBody string) (*models.SubmissionRequest, error)
}

// CaptchaVerifier checks a submitted token
type CaptchaVerifier interface {
	Verify(ctx context.Context, expectedAction, remoteIP, token string) error
}

// Sender delivers a notification message
type Sender interface {
	Send(ctx context.Context, to, from string, msg models.NotificationMessage) error
}

// Contact is the request dispatcher
type Contact struct {
	cfg       *config.Config
	validator FormValidator
	verifier  CaptchaVerifier
	sender    Sender
}

// NewContact creates a dispatcher over the given collaborators
func NewContact(cfg *config.Config, validator FormValidator, verifier CaptchaVerifier, sender Sender) *Contact {
	return &Contact{
		cfg:       cfg,
		validator: validator,
		verifier:  verifier,
		sender:    sender,
	}
}

// Handle produces exactly one response per request. The returned error is
// always nil; failures are encoded in the response.
func (h *Contact) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.HTTPMethod {
	case http.MethodPost:
		return h.handlePost(ctx, req), nil
	case http.MethodOptions:
		return response.Preflight(h.cfg.CORS), nil
	default:
		log.Printf("[%s] rejected method %q from %s", requestID(ctx), req.HTTPMethod, req.RequestContext.Identity.SourceIP)
		return response.Error(h.cfg.CORS, models.NewPipelineError(models.ErrMethodNotAllowed, nil)), nil
	}
}

func (h *Contact) handlePost(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := requestID(ctx)
	ip := req.RequestContext.Identity.SourceIP

	if err := h.process(ctx, id, ip, req.Body); err != nil {
		return response.Error(h.cfg.CORS, err)
	}

	log.Printf("[%s] contact message from %s delivered", id, ip)
	return response.OK(h.cfg.CORS, nil)
}

// process runs validate, verify, compose and send, stopping at the first failure
func (h *Contact) process(ctx context.Context, id, ip, body string) *models.PipelineError {
	if !h.cfg.MailConfigured() {
		log.Printf("[%s] unable to continue as either the to or from address is not configured", id)
		return models.NewPipelineError(models.ErrConfiguration, nil)
	}

	sub, err := h.validator.Validate(ip, body)
	if err != nil {
		pe := asPipelineError(err)
		log.Printf("[%s] invalid submission from %s: %v", id, ip, pe)
		return pe
	}

	log.Printf("[%s] submission from IP: %s Name: %s Email: %s", id, sub.SourceIP, sub.Name, sub.Email)

	if err := h.verifier.Verify(ctx, h.cfg.Recaptcha.Action, sub.SourceIP, sub.CaptchaToken); err != nil {
		pe := classifyCaptcha(err)
		log.Printf("[%s] recaptcha check failed for %s: %v", id, sub.SourceIP, err)
		return pe
	}

	msg := mail.BuildMessage(h.cfg.SiteName, sub)
	if err := h.sender.Send(ctx, h.cfg.Mail.To, h.cfg.Mail.From, msg); err != nil {
		log.Printf("[%s] failed to send message: %v", id, err)
		return models.NewPipelineError(models.ErrSend, err)
	}

	return nil
}

func classifyCaptcha(err error) *models.PipelineError {
	var ce *recaptcha.Error
	if !errors.As(err, &ce) {
		return models.NewPipelineError(models.ErrCaptchaUnavailable, err)
	}

	switch ce.Kind {
	case recaptcha.ConfigurationError:
		return models.NewPipelineError(models.ErrCaptchaConfiguration, ce)
	case recaptcha.InvalidAction:
		return models.NewPipelineError(models.ErrCaptchaInvalidAction, ce)
	case recaptcha.ValidationError:
		return models.NewPipelineError(models.ErrCaptchaInvalid, ce)
	default:
		return models.NewPipelineError(models.ErrCaptchaUnavailable, ce)
	}
}

func asPipelineError(err error) *models.PipelineError {
	var pe *models.PipelineError
	if errors.As(err, &pe) {
		return pe
	}
	return models.NewPipelineError(models.ErrInternal, err)
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
