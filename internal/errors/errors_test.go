package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRendersSingleLine(t *testing.T) {
	err := MetadataErrorf("cannot resolve type %s", "Windows.Foundation.Bogus")
	assert.Equal(t, "cannot resolve type Windows.Foundation.Bogus", err.Error())
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(Io, "failed to create winrt/impl", cause)
	assert.Equal(t, "failed to create winrt/impl: permission denied", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestKindOfAndExitCode(t *testing.T) {
	cases := []struct {
		err      error
		wantKind Kind
		wantExit int
	}{
		{UsageErrorf("bad flag"), Usage, 0},
		{MetadataErrorf("bad db"), Metadata, 1},
		{ConfigErrorf("missing root"), Config, 1},
		{IoErrorf("disk full"), Io, 1},
		{InternalErrorf("invariant violated"), Internal, 1},
		{fmt.Errorf("plain error"), Internal, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.wantKind, KindOf(c.err), c.err)
		assert.Equal(t, c.wantExit, ExitCode(KindOf(c.err)), c.err)
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	base := ConfigErrorf("missing <configuration> root")
	wrapped := fmt.Errorf("loading config: %w", base)
	assert.Equal(t, Config, KindOf(wrapped))
}
