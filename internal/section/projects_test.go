package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devresume/internal/domain"
)

func TestProjects_Lifecycle(t *testing.T) {
	p := NewProjects(nil)
	e := p.Add()
	require.NoError(t, p.Update(e.ID, "name", "devresume"))
	require.NoError(t, p.Update(e.ID, "url", "nope"))
	assert.Equal(t, []string{"not a valid URL"}, p.View().Flags())
	assert.ErrorIs(t, p.Update(e.ID, "stars", "5"), ErrUnknownField)
	require.True(t, p.Remove(e.ID))
	assert.Empty(t, p.Values())
}

func TestProjects_SeedIsCopied(t *testing.T) {
	initial := []domain.ProjectEntry{{ID: "p1", Name: "cli"}}
	p := NewProjects(initial)
	require.NoError(t, p.Update("p1", "name", "server"))
	assert.Equal(t, "cli", initial[0].Name)
	assert.Equal(t, "server", p.Values()[0].Name)

	assert.ErrorIs(t, p.Update("missing", "name", "x"), ErrNotFound)
	assert.False(t, p.Remove("missing"))
}
