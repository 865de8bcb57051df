package bot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"devresume/internal/export"
)

func TestNamespace(t *testing.T) {
	assert.Equal(t, "chat:42:", Namespace(42))
	assert.Equal(t, "chat:-1001:", Namespace(-1001))
	assert.NotEqual(t, Namespace(1), Namespace(11))
}

func TestExportMessage(t *testing.T) {
	wrapped := fmt.Errorf("export: %w", export.ErrPreviewNotMounted)
	assert.Equal(t, "the resume preview is not available.", exportMessage(wrapped))
	assert.Equal(t, "no browser is installed on the server.", exportMessage(export.ErrBrowserNotFound))
	assert.Equal(t, "please try again later.", exportMessage(errors.New("boom")))
}
