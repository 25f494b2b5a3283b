// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/karmix/orgs-custom-res/structs"
)

// DeleteRequest deletes the organization.
type DeleteRequest struct {
	PhysicalResourceID string
}

// Identifier returns the physical resource id of the organization being deleted.
func (r DeleteRequest) Identifier() string {
	return r.PhysicalResourceID
}

// Process deletes the organization. The response carries no data.
func (r DeleteRequest) Process(ctx context.Context, env Environment) (Result, error) {
	env.Logger.Info("Deleting organization", "physical-resource-id", r.PhysicalResourceID)
	if err := env.Organizations.DeleteOrganization(ctx); err != nil {
		return Result{}, err
	}

	return Result{}, env.deleteParameters(ctx)
}

func (env Environment) deleteParameters(ctx context.Context) error {
	if !env.IsPublishingParameters() {
		return nil
	}

	var resultErr error
	for _, k := range structs.ParameterNames(env.ParameterPrefix) {
		env.Logger.Debug("Deleting parameter", "name", k)
		if err := env.Store.Delete(ctx, k); err != nil {
			resultErr = multierror.Append(resultErr, err)
		}
	}
	return resultErr
}
