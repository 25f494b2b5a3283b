// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package response reports the outcome of a custom resource operation back to CloudFormation.
package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

const failedReasonPrefix = "See the details in CloudWatch Log Stream: "

// Context is the part of the Lambda execution context used to build a response.
type Context struct {
	// LogStreamName is the CloudWatch log stream of the running invocation.
	LogStreamName string
}

// LambdaContext returns the Context of the running Lambda function.
func LambdaContext() Context {
	return Context{LogStreamName: lambdacontext.LogStreamName}
}

// Envelope is the document CloudFormation expects at the response URL.
type Envelope struct {
	RequestID          string                 `json:"RequestId"`
	StackID            string                 `json:"StackId"`
	LogicalResourceID  string                 `json:"LogicalResourceId"`
	PhysicalResourceID string                 `json:"PhysicalResourceId"`
	Status             cfn.StatusType         `json:"Status"`
	Reason             string                 `json:"Reason,omitempty"`
	Data               map[string]interface{} `json:"-"`
	NoEcho             bool                   `json:"NoEcho,omitempty"`
}

// MarshalJSON encodes the envelope. Data is present whenever it is non-nil, even if empty.
func (e Envelope) MarshalJSON() ([]byte, error) {
	type envelope Envelope
	out := struct {
		envelope
		Data *map[string]interface{} `json:"Data,omitempty"`
	}{envelope: envelope(e)}
	if e.Data != nil {
		out.Data = &e.Data
	}
	return json.Marshal(out)
}

type options struct {
	data               map[string]interface{}
	physicalResourceID string
	noEcho             bool
	reason             string
	logger             Logger
}

// Option configures a single response.
type Option func(*options)

// WithData sets the attributes returned to the stack. A nil map omits Data.
func WithData(data map[string]interface{}) Option {
	return func(o *options) {
		o.data = data
	}
}

// WithPhysicalResourceID sets the physical resource id, overriding the one in the event.
func WithPhysicalResourceID(id string) Option {
	return func(o *options) {
		o.physicalResourceID = id
	}
}

// WithNoEcho masks the response data in the CloudFormation console.
func WithNoEcho(noEcho bool) Option {
	return func(o *options) {
		o.noEcho = noEcho
	}
}

// WithReason sets the reason reported with the status.
func WithReason(reason string) Option {
	return func(o *options) {
		o.reason = reason
	}
}

// WithLogger sets the logger for a single response.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewEnvelope builds the response envelope for the event.
//
// The physical resource id is taken from WithPhysicalResourceID, then from the event,
// then from the log stream name. The reason is taken from WithReason; a FAILED response
// without one points at the log stream.
func NewEnvelope(event cfn.Event, lc Context, status cfn.StatusType, opts ...Option) Envelope {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newEnvelope(event, lc, status, o)
}

func newEnvelope(event cfn.Event, lc Context, status cfn.StatusType, o options) Envelope {
	e := Envelope{
		RequestID:          event.RequestID,
		StackID:            event.StackID,
		LogicalResourceID:  event.LogicalResourceID,
		PhysicalResourceID: firstNonEmpty(o.physicalResourceID, event.PhysicalResourceID, lc.LogStreamName),
		Status:             status,
		Data:               o.data,
		NoEcho:             o.noEcho,
	}

	switch {
	case o.reason != "":
		e.Reason = o.reason
	case status == cfn.StatusFailed:
		e.Reason = failedReasonPrefix + lc.LogStreamName
	}

	return e
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// HTTPClient sends the response request.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Reporter sends responses to the CloudFormation response URL.
type Reporter struct {
	// Client defaults to http.DefaultClient.
	Client HTTPClient
	// Logger defaults to StdLog.
	Logger Logger
}

// NewReporter returns a Reporter that uses the given client and logger.
func NewReporter(client HTTPClient, logger Logger) *Reporter {
	return &Reporter{Client: client, Logger: logger}
}

var defaultReporter = &Reporter{}

// Send reports the status using a Reporter with the default client and logger.
func Send(ctx context.Context, event cfn.Event, lc Context, status cfn.StatusType, opts ...Option) {
	defaultReporter.Send(ctx, event, lc, status, opts...)
}

// Send builds the response envelope and PUTs it to the event's response URL.
// Delivery failures are logged and otherwise ignored.
func (r *Reporter) Send(ctx context.Context, event cfn.Event, lc Context, status cfn.StatusType, opts ...Option) {
	o := options{logger: r.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = StdLog{}
	}

	body, err := json.Marshal(newEnvelope(event, lc, status, o))
	if err != nil {
		log.Info("encoding response failed", "error", err)
		return
	}

	log.Info("submitting response", "data", string(body), "url", event.ResponseURL)

	if err := r.put(ctx, event.ResponseURL, body); err != nil {
		log.Info("response PUT failed", "error", err)
	}
}

func (r *Reporter) put(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// The pre-signed URL is signed without a content type.
	req.Header.Set("Content-Type", "")
	req.ContentLength = int64(len(body))

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected response status: %s", res.Status)
	}
	return nil
}
