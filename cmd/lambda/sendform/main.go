package main

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/rafmac11/landscapes-form/internal/config"
	"github.com/rafmac11/landscapes-form/internal/handlers"
	"github.com/rafmac11/landscapes-form/pkg/server"
)

var container *server.Container

func init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if !strings.EqualFold(event.HTTPMethod, "POST") || event.Path != "/api/send-form" {
		return respond(404, handlers.ErrorResponse{Error: "Not found"}), nil
	}

	var req handlers.SendFormRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil || req.FormData == nil {
		return respond(400, handlers.ErrorResponse{Error: "Missing form data"}), nil
	}

	result := container.Dispatcher.Dispatch(ctx, req.FormData)
	if !result.Succeeded() {
		return respond(500, handlers.ErrorResponse{Error: "Both email and Airtable failed"}), nil
	}

	return respond(200, handlers.SendFormResponse{
		Success:  true,
		Email:    result.Email.OK,
		Airtable: result.Airtable.OK,
	}), nil
}

func respond(status int, body interface{}) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}

func main() {
	awslambda.Start(handler)
}
