package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageFormatsPlaceholders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yml")
	content := "greeting: \"Hello {0}, you have {1} notifications\"\n" +
		"nested:\n" +
		"  key: \"nested value\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	Init(path)

	assert.Equal(t, "Hello Ada, you have 3 notifications", GetMessage("greeting", "Ada", 3))
	assert.Equal(t, "nested value", GetMessage("nested.key"))
	assert.Equal(t, "Message not found: missing", GetMessage("missing"))
}
