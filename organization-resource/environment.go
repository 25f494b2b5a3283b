// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"

	"github.com/karmix/orgs-custom-res/client"
	"github.com/karmix/orgs-custom-res/response"
	"github.com/karmix/orgs-custom-res/structs"
)

// Config holds the configuration from the environment.
type Config struct {
	// LogLevel is the configured logging level.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// ParameterPrefix is the path in Parameter Store where the organization attributes are written.
	// Publishing is disabled when it is empty.
	ParameterPrefix string `envconfig:"ORGANIZATION_PARAMETER_PREFIX"`

	// ResponseTimeout bounds the request to the CloudFormation response URL. Zero means no timeout.
	ResponseTimeout time.Duration `envconfig:"RESPONSE_TIMEOUT" default:"0s"`
}

// ParamStore is an interface for writing and removing key/value pairs in a data store.
type ParamStore interface {
	Delete(ctx context.Context, k string) error
	Set(ctx context.Context, k, v string) error
}

// OrganizationsAPIClient is an interface for managing the organization of the calling account.
type OrganizationsAPIClient interface {
	CreateOrganization(ctx context.Context, featureSet string) (structs.Organization, error)
	DeleteOrganization(ctx context.Context) error
}

// Reporter sends the outcome of a request to CloudFormation.
type Reporter interface {
	Send(ctx context.Context, event cfn.Event, lc response.Context, status cfn.StatusType, opts ...response.Option)
}

// Environment contains all of the custom resource's dependencies.
type Environment struct {
	Config

	// Organizations is the client used to create and delete the organization.
	Organizations OrganizationsAPIClient

	// Store is the data store client used to publish the organization attributes.
	Store ParamStore

	// Reporter delivers the response to CloudFormation.
	Reporter Reporter

	// Logger is used to log messages.
	Logger hclog.Logger
}

// SetupEnvironment constructs the processing Environment based on environment variables.
func SetupEnvironment(ctx context.Context) (Environment, error) {
	var env Environment

	err := envconfig.Process("", &env.Config)
	if err != nil {
		return env, err
	}

	env.Logger = hclog.New(
		&hclog.LoggerOptions{
			Name:  "organization-resource",
			Level: hclog.LevelFromString(env.LogLevel),
		},
	)

	sdkConfig, err := config.LoadDefaultConfig(ctx, config.WithRetryer(func() aws.Retryer {
		// Adaptive mode should retry on hitting rate limits.
		return retry.AddWithMaxBackoffDelay(retry.NewAdaptiveMode(), 3*time.Second)
	}))
	if err != nil {
		return env, err
	}

	env.Organizations = client.NewOrganizations(&sdkConfig)
	if env.IsPublishingParameters() {
		env.Store = client.NewSSM(&sdkConfig)
	}
	env.Reporter = response.NewReporter(&http.Client{Timeout: env.ResponseTimeout}, env.Logger)

	return env, nil
}

// IsPublishingParameters indicates whether the organization attributes are written to Parameter Store.
func (env Environment) IsPublishingParameters() bool {
	return len(env.ParameterPrefix) > 0
}
