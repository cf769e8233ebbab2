package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
)

func TestRenderErrorPrintsUsageToStdoutAndExitsZero(t *testing.T) {
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer

	code := renderError(cmd, gerrors.UsageErrorf("at least one -input is required"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRenderErrorPrintsErrorLineToStderrAndExitsOne(t *testing.T) {
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer

	code := renderError(cmd, gerrors.MetadataErrorf("failed to parse metadata file foo.json"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "cppwinrt : error")
}
