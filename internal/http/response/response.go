package response

import (
	"encoding/json"
	"log"
	"net/http"

	"contactform-backend/internal/config"
	"contactform-backend/models"

	"github.com/aws/aws-lambda-go/events"
)

// Proxy builds a JSON API Gateway response with the CORS origin attached
func Proxy(cors config.CORSConfig, status int, v interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode response body: %v", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    originHeaders(cors),
	}
}

// OK sends a 200 response wrapping data; nil data becomes an empty list
func OK(cors config.CORSConfig, data interface{}) events.APIGatewayProxyResponse {
	if data == nil {
		data = []interface{}{}
	}
	return Proxy(cors, http.StatusOK, models.DataResponse{Data: data})
}

// Error maps a classified failure to its status and client message
func Error(cors config.CORSConfig, err *models.PipelineError) events.APIGatewayProxyResponse {
	return Proxy(cors, err.Status(), models.ErrorResponse{Error: err.Message()})
}

// Preflight answers a CORS pre-flight request without a body
func Preflight(cors config.CORSConfig) events.APIGatewayProxyResponse {
	methods := cors.AllowMethodsHeader()
	headers := originHeaders(cors)
	headers["Allow"] = methods
	headers["Access-Control-Allow-Methods"] = methods

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		MultiValueHeaders: map[string][]string{
			"Access-Control-Allow-Headers": {"Content-Type"},
		},
	}
}

// Write copies a proxy response onto an http.ResponseWriter
func Write(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if resp.Body != "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write([]byte(resp.Body)); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func originHeaders(cors config.CORSConfig) map[string]string {
	headers := map[string]string{}
	if cors.AllowOrigin != "" {
		headers["Access-Control-Allow-Origin"] = cors.AllowOrigin
	}
	return headers
}
