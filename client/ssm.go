// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package client

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// SSMAPI is the subset of the Systems Manager API used by SSMClient.
type SSMAPI interface {
	PutParameter(context.Context, *ssm.PutParameterInput, ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
	DeleteParameter(context.Context, *ssm.DeleteParameterInput, ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error)
}

// SSMClient provides an API client for interacting with AWS Systems Manager Parameter Store.
type SSMClient struct {
	client SSMAPI
}

// NewSSM creates an instance of the SSMClient from the given AWS SDK config.
func NewSSM(cfg *aws.Config) *SSMClient {
	return &SSMClient{client: ssm.NewFromConfig(*cfg)}
}

// NewSSMWithAPI creates an SSMClient on top of an existing API implementation.
func NewSSMWithAPI(api SSMAPI) *SSMClient {
	return &SSMClient{client: api}
}

// Delete removes the value for the given key from Parameter Store.
// A key that does not exist is not an error.
func (c *SSMClient) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: &key})

	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Set writes the value for the given key to Parameter Store as a plain String.
// Any existing data for the given key is overwritten.
func (c *SSMClient) Set(ctx context.Context, key, val string) error {
	_, err := c.client.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      &key,
		Value:     &val,
		Overwrite: aws.Bool(true),
		Type:      types.ParameterTypeString,
	})
	return err
}
