// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package client

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/organizations/types"

	"github.com/karmix/orgs-custom-res/structs"
)

// OrganizationsAPI is the subset of the AWS Organizations API used by Organizations.
type OrganizationsAPI interface {
	CreateOrganization(context.Context, *organizations.CreateOrganizationInput, ...func(*organizations.Options)) (*organizations.CreateOrganizationOutput, error)
	DeleteOrganization(context.Context, *organizations.DeleteOrganizationInput, ...func(*organizations.Options)) (*organizations.DeleteOrganizationOutput, error)
}

// Organizations is a client for creating and deleting the organization of the calling account.
type Organizations struct {
	client OrganizationsAPI
}

// NewOrganizations creates an Organizations client from the given AWS SDK config.
func NewOrganizations(cfg *aws.Config) *Organizations {
	return &Organizations{client: organizations.NewFromConfig(*cfg)}
}

// NewOrganizationsWithAPI creates an Organizations client on top of an existing API implementation.
func NewOrganizationsWithAPI(api OrganizationsAPI) *Organizations {
	return &Organizations{client: api}
}

// CreateOrganization creates an organization with the calling account as its management account.
func (c *Organizations) CreateOrganization(ctx context.Context, featureSet string) (structs.Organization, error) {
	out, err := c.client.CreateOrganization(ctx, &organizations.CreateOrganizationInput{
		FeatureSet: types.OrganizationFeatureSet(featureSet),
	})
	if err != nil {
		return structs.Organization{}, err
	}

	org := out.Organization
	if org == nil {
		return structs.Organization{}, errors.New("CreateOrganization returned no organization")
	}

	return structs.Organization{
		Arn:                aws.ToString(org.Arn),
		ID:                 aws.ToString(org.Id),
		FeatureSet:         string(org.FeatureSet),
		MasterAccountArn:   aws.ToString(org.MasterAccountArn),
		MasterAccountID:    aws.ToString(org.MasterAccountId),
		MasterAccountEmail: aws.ToString(org.MasterAccountEmail),
	}, nil
}

// DeleteOrganization deletes the organization of the calling account.
// The organization must have no member accounts left.
func (c *Organizations) DeleteOrganization(ctx context.Context) error {
	_, err := c.client.DeleteOrganization(ctx, &organizations.DeleteOrganizationInput{})
	return err
}
