// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/karmix/orgs-custom-res/structs"
)

// CreateRequest creates the organization.
type CreateRequest struct {
	Properties
}

// Identifier returns the feature set of the organization being created.
func (r CreateRequest) Identifier() string {
	return r.FeatureSet
}

// Process creates the organization and returns its attributes, with the organization id
// as the physical resource id.
func (r CreateRequest) Process(ctx context.Context, env Environment) (Result, error) {
	env.Logger.Info("Creating organization", "feature-set", r.FeatureSet)
	org, err := env.Organizations.CreateOrganization(ctx, r.FeatureSet)
	if err != nil {
		return Result{}, err
	}
	env.Logger.Info("Created organization", "id", org.ID, "arn", org.Arn)

	result := Result{PhysicalResourceID: org.ID}
	if err := env.publishParameters(ctx, org); err != nil {
		return result, err
	}

	result.Data = org.ResponseData()
	return result, nil
}

func (env Environment) publishParameters(ctx context.Context, org structs.Organization) error {
	if !env.IsPublishingParameters() {
		return nil
	}

	params := org.Parameters(env.ParameterPrefix)
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var resultErr error
	for _, k := range keys {
		env.Logger.Debug("Writing parameter", "name", k)
		if err := env.Store.Set(ctx, k, params[k]); err != nil {
			resultErr = multierror.Append(resultErr, err)
		}
	}
	return resultErr
}
