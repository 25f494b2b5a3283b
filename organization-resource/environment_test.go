// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/karmix/orgs-custom-res/response"
	"github.com/karmix/orgs-custom-res/structs"
)

func TestSetupEnvironment(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")

	t.Run("with parameter publishing", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("ORGANIZATION_PARAMETER_PREFIX", "/org")
		t.Setenv("RESPONSE_TIMEOUT", "5s")

		env, err := SetupEnvironment(context.Background())
		require.NoError(t, err)

		require.Equal(t, "warn", env.LogLevel)
		require.Equal(t, "/org", env.ParameterPrefix)
		require.Equal(t, 5*time.Second, env.ResponseTimeout)
		require.True(t, env.IsPublishingParameters())
		require.NotNil(t, env.Organizations)
		require.NotNil(t, env.Store)
		require.NotNil(t, env.Reporter)
		require.NotNil(t, env.Logger)
	})

	t.Run("with defaults", func(t *testing.T) {
		env, err := SetupEnvironment(context.Background())
		require.NoError(t, err)

		require.Equal(t, "info", env.LogLevel)
		require.Equal(t, time.Duration(0), env.ResponseTimeout)
		require.False(t, env.IsPublishingParameters())
		require.NotNil(t, env.Organizations)
		require.Nil(t, env.Store)
	})

	t.Run("with an invalid timeout", func(t *testing.T) {
		t.Setenv("RESPONSE_TIMEOUT", "soon")

		_, err := SetupEnvironment(context.Background())
		require.Error(t, err)
	})
}

func mockEnvironment(orgs OrganizationsAPIClient, store ParamStore, reporter Reporter, prefix string) Environment {
	return Environment{
		Config: Config{
			LogLevel:        "info",
			ParameterPrefix: prefix,
		},
		Organizations: orgs,
		Store:         store,
		Reporter:      reporter,
		Logger: hclog.New(
			&hclog.LoggerOptions{
				Level:  hclog.LevelFromString("info"),
				Output: io.Discard,
			},
		),
	}
}

func testOrganization() structs.Organization {
	return structs.Organization{
		Arn:                "ORG_ARN",
		ID:                 "ORG_ID",
		FeatureSet:         structs.FeatureSetAll,
		MasterAccountArn:   "MASTER_ACCOUNT_ARN",
		MasterAccountID:    "MASTER_ACCOUNT_ID",
		MasterAccountEmail: "MASTER_ACCOUNT_EMAIL",
	}
}

type mockOrganizations struct {
	org         structs.Organization
	createErr   error
	deleteErr   error
	featureSets []string
	deleteCalls int
}

var _ OrganizationsAPIClient = (*mockOrganizations)(nil)

func (m *mockOrganizations) CreateOrganization(_ context.Context, featureSet string) (structs.Organization, error) {
	m.featureSets = append(m.featureSets, featureSet)
	if m.createErr != nil {
		return structs.Organization{}, m.createErr
	}
	return m.org, nil
}

func (m *mockOrganizations) DeleteOrganization(context.Context) error {
	m.deleteCalls++
	return m.deleteErr
}

type mockStore struct {
	params    map[string]string
	setErr    error
	deleteErr error
}

var _ ParamStore = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{params: make(map[string]string)}
}

func (s *mockStore) Set(_ context.Context, k, v string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.params[k] = v
	return nil
}

func (s *mockStore) Delete(_ context.Context, k string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.params, k)
	return nil
}

// callbackServer records every response envelope PUT to it.
type callbackServer struct {
	*httptest.Server
	mu        sync.Mutex
	envelopes []map[string]interface{}
}

func newCallbackServer(t *testing.T) *callbackServer {
	cs := &callbackServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var envelope map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		cs.mu.Lock()
		defer cs.mu.Unlock()
		cs.envelopes = append(cs.envelopes, envelope)
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *callbackServer) Envelopes() []map[string]interface{} {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.envelopes
}

func (cs *callbackServer) Reporter() *response.Reporter {
	return response.NewReporter(cs.Client(), hclog.NewNullLogger())
}

var errAccessDenied = errors.New("AccessDeniedException: You don't have permissions to access this resource.")
