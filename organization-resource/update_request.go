// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
)

var errUpdateNotSupported = errors.New("Update not supported")

// UpdateRequest is always rejected; the organization cannot be changed in place.
type UpdateRequest struct {
	PhysicalResourceID string
}

func (r UpdateRequest) Identifier() string {
	return r.PhysicalResourceID
}

func (r UpdateRequest) Process(context.Context, Environment) (Result, error) {
	return Result{}, errUpdateNotSupported
}
