// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"

	"github.com/karmix/orgs-custom-res/response"
)

// Request is a single custom resource lifecycle operation.
type Request interface {
	Process(context.Context, Environment) (Result, error)
	Identifier() string
}

// Result is the outcome of a successful Request.
type Result struct {
	// PhysicalResourceID overrides the id from the event when set.
	PhysicalResourceID string
	// Data is returned to the stack; nil omits it from the response.
	Data map[string]interface{}
}

// GetRequest maps the event to the Request for its lifecycle verb.
func GetRequest(event cfn.Event) (Request, error) {
	switch event.RequestType {
	case cfn.RequestCreate:
		props, err := decodeProperties(event.ResourceProperties)
		if err != nil {
			return nil, err
		}
		return CreateRequest{Properties: props}, nil
	case cfn.RequestDelete:
		return DeleteRequest{PhysicalResourceID: event.PhysicalResourceID}, nil
	case cfn.RequestUpdate:
		return UpdateRequest{PhysicalResourceID: event.PhysicalResourceID}, nil
	}

	return nil, fmt.Errorf("unsupported request type %q", event.RequestType)
}

// Handle processes the event and reports the outcome. Exactly one response is sent.
func (env Environment) Handle(ctx context.Context, event cfn.Event, lc response.Context) {
	env.Logger.Info("Received request",
		"request-type", event.RequestType,
		"request-id", event.RequestID,
		"logical-resource-id", event.LogicalResourceID)

	req, err := GetRequest(event)
	if err != nil {
		env.Logger.Warn("Error reading request", "error", err)
		env.Reporter.Send(ctx, event, lc, cfn.StatusFailed, response.WithReason(err.Error()))
		return
	}

	result, err := req.Process(ctx, env)
	if err != nil {
		env.Logger.Warn("Error processing request", "error", err, "identifier", req.Identifier())
		env.Reporter.Send(ctx, event, lc, cfn.StatusFailed,
			response.WithPhysicalResourceID(result.PhysicalResourceID),
			response.WithReason(err.Error()))
		return
	}

	env.Reporter.Send(ctx, event, lc, cfn.StatusSuccess,
		response.WithPhysicalResourceID(result.PhysicalResourceID),
		response.WithData(result.Data))
}
