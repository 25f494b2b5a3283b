// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package structs

import (
	"fmt"
	"strings"
)

const (
	// FeatureSetAll enables all features of AWS Organizations.
	FeatureSetAll = "ALL"
	// FeatureSetConsolidatedBilling limits the organization to shared billing.
	FeatureSetConsolidatedBilling = "CONSOLIDATED_BILLING"
)

const (
	ArnAttribute              = "Arn"
	IDAttribute               = "Id"
	MasterAccountArnAttribute = "MasterAccountArn"
	MasterAccountIDAttribute  = "MasterAccountId"
)

// Attributes lists the organization attributes returned to CloudFormation, in output order.
var Attributes = []string{
	ArnAttribute,
	IDAttribute,
	MasterAccountArnAttribute,
	MasterAccountIDAttribute,
}

// Organization holds the attributes of an AWS Organization.
type Organization struct {
	Arn                string
	ID                 string
	FeatureSet         string
	MasterAccountArn   string
	MasterAccountID    string
	MasterAccountEmail string
}

// ResponseData returns the attributes that are exposed to the stack through Fn::GetAtt.
func (o Organization) ResponseData() map[string]interface{} {
	return map[string]interface{}{
		ArnAttribute:              o.Arn,
		IDAttribute:               o.ID,
		MasterAccountArnAttribute: o.MasterAccountArn,
		MasterAccountIDAttribute:  o.MasterAccountID,
	}
}

// Parameters returns the Parameter Store entries for the organization under the given prefix.
func (o Organization) Parameters(prefix string) map[string]string {
	params := make(map[string]string, len(Attributes))
	for k, v := range o.ResponseData() {
		params[ParameterName(prefix, k)] = fmt.Sprint(v)
	}
	return params
}

// ParameterName joins the prefix and attribute into a Parameter Store key.
func ParameterName(prefix, attribute string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + attribute
}

// ParameterNames returns every Parameter Store key managed under the given prefix.
func ParameterNames(prefix string) []string {
	names := make([]string, 0, len(Attributes))
	for _, a := range Attributes {
		names = append(names, ParameterName(prefix, a))
	}
	return names
}
