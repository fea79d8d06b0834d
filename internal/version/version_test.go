// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	assert.True(t, strings.HasPrefix(Info(), "pii-redactor "+Version))
	assert.Equal(t, Version, Short())
	assert.Equal(t, Platform, Full()["platform"])
}
