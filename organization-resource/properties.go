// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/karmix/orgs-custom-res/structs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Properties are the ResourceProperties of the custom resource.
// Other keys, such as ServiceToken, are ignored.
type Properties struct {
	// FeatureSet is the feature set of the new organization. Defaults to ALL.
	FeatureSet string `mapstructure:"FeatureSet" validate:"oneof=ALL CONSOLIDATED_BILLING"`
}

func decodeProperties(raw map[string]interface{}) (Properties, error) {
	var p Properties
	if err := mapstructure.Decode(raw, &p); err != nil {
		return p, fmt.Errorf("error decoding resource properties: %w", err)
	}

	if p.FeatureSet == "" {
		p.FeatureSet = structs.FeatureSetAll
	}

	if err := validate.Struct(p); err != nil {
		return p, fmt.Errorf("invalid resource properties: %w", err)
	}
	return p, nil
}

func validateResponseURL(url string) error {
	return validate.Var(url, "required,url")
}
