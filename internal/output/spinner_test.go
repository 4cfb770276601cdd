package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_WithoutTerminal(t *testing.T) {
	t.Run("returns action result", func(t *testing.T) {
		ran := false
		err := RunWithSpinner(context.Background(), func() error {
			ran = true
			return nil
		}, WithTitle("testing"))

		assert.NoError(t, err)
		assert.True(t, ran)
	})

	t.Run("propagates action error", func(t *testing.T) {
		want := errors.New("boom")
		err := RunWithSpinner(context.Background(), func() error { return want })
		assert.ErrorIs(t, err, want)
	})
}
