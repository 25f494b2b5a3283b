// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/karmix/orgs-custom-res/response"
)

func main() {
	lambda.Start(HandleRequest)
}

// HandleRequest processes a single CloudFormation custom resource event.
// Every event with a valid response URL gets exactly one response. The returned error
// is nil once a response was attempted, so that the asynchronous invocation is not retried.
func HandleRequest(ctx context.Context, event cfn.Event) error {
	lc := response.LambdaContext()

	if err := validateResponseURL(event.ResponseURL); err != nil {
		// There is nowhere to report to, and no logger yet.
		fmt.Printf("Invalid response URL %q: %s\n", event.ResponseURL, err)
		return fmt.Errorf("invalid response URL: %w", err)
	}

	env, err := SetupEnvironment(ctx)
	if err != nil {
		response.Send(ctx, event, lc, cfn.StatusFailed,
			response.WithReason(fmt.Sprintf("setting up environment: %s", err)))
		return nil
	}

	env.Handle(ctx, event, lc)
	return nil
}
