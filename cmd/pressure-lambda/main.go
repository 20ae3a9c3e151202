//go:build lambda

// Command pressure-lambda serves the solver as an AWS Lambda function URL.
// The request body is a service.Request; the reply is a service.Response.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/katalvlaran/pressure/internal/ctxlog"
	"github.com/katalvlaran/pressure/service"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

var (
	svc    = service.New(service.WithTimeout(25 * time.Second))
	logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
)

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req service.Request
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}

	resp, err := svc.Handle(ctxlog.WithLogger(ctx, logger), req)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return errResp(422, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return errResp(504, "solve timed out")
	case err != nil:
		logger.Error("Solve failed.", "error", err)
		return errResp(500, err.Error())
	}

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
