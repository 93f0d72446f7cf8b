package libol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"), "be the same.")
	assert.Equal(t, WARN, ParseLevel("WARN"), "be the same.")
	assert.Equal(t, CMD, ParseLevel("15"), "be the same.")
	assert.Equal(t, INFO, ParseLevel("what"), "be the same.")
}

func TestSubLoggerSave(t *testing.T) {
	out := NewSubLogger("eth9/4")
	out.Info("V4Client.Start %s", "saved")
	out.Debug("V4Client.Start %s", "not saved")

	var found *Message
	for m := range Logger.List() {
		if m == nil {
			break
		}
		if found == nil && m.Module == "eth9/4" {
			found = m
		}
	}
	if assert.NotNil(t, found, "saved") {
		assert.Equal(t, "INFO", found.Level, "be the same.")
		assert.Equal(t, "V4Client.Start saved", found.Message, "be the same.")
	}
}
