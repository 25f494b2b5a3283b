// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/stretchr/testify/require"
)

func TestHandleRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("without a response URL", func(t *testing.T) {
		err := HandleRequest(ctx, testEvent(cfn.RequestCreate, ""))
		require.Error(t, err)
	})

	t.Run("with an invalid response URL", func(t *testing.T) {
		err := HandleRequest(ctx, testEvent(cfn.RequestCreate, "not a url"))
		require.Error(t, err)
	})

	t.Run("reports a failed environment setup", func(t *testing.T) {
		t.Setenv("RESPONSE_TIMEOUT", "soon")
		srv := newCallbackServer(t)

		err := HandleRequest(ctx, testEvent(cfn.RequestCreate, srv.URL))
		require.NoError(t, err)

		envelopes := srv.Envelopes()
		require.Len(t, envelopes, 1)
		require.Equal(t, "FAILED", envelopes[0]["Status"])
		require.Contains(t, envelopes[0]["Reason"], "setting up environment: ")
	})
}
