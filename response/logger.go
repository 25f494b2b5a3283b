// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package response

import (
	"fmt"
	"log"
	"strings"
)

// Logger is the logging interface used by the Reporter.
// An hclog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...interface{})
}

// StdLog is a Logger that uses the stdlib log package.
type StdLog struct{}

var _ Logger = StdLog{}

// Info writes the message and its key/value pairs using log.Print.
func (l StdLog) Info(msg string, args ...interface{}) {
	log.Print(formatLine(msg, args...))
}

func formatLine(msg string, args ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fmt.Fprintf(&sb, " EXTRA_VALUE_AT_END=%v", args[i])
			break
		}
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	return sb.String()
}
