package handlers

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"

	"contactform-backend/internal/http/response"
	"contactform-backend/models"

	"github.com/aws/aws-lambda-go/events"
)

const maxBodyBytes = 1 << 20 // 1MB limit

// ProxyHandler is satisfied by the Lambda dispatcher
type ProxyHandler interface {
	Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
}

// ContactHandler serves the Lambda dispatcher over plain HTTP
type ContactHandler struct {
	proxy ProxyHandler
}

func NewContactHandler(proxy ProxyHandler) *ContactHandler {
	return &ContactHandler{proxy: proxy}
}

// ServeHTTP converts the request into an API Gateway proxy event
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Printf("Failed to read request body from %s: %v", r.RemoteAddr, err)
		response.JSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "request body too large"})
		return
	}

	req := events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": r.Header.Get("Content-Type")},
		RequestContext: events.APIGatewayProxyRequestContext{
			HTTPMethod: r.Method,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  sourceIP(r.RemoteAddr),
				UserAgent: r.UserAgent(),
			},
		},
	}

	resp, err := h.proxy.Handle(r.Context(), req)
	if err != nil {
		log.Printf("Contact handler failed: %v", err)
		response.JSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	response.Write(w, resp)
}

func sourceIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
