package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesDefaults(t *testing.T) {
	store := newTestStore(t)

	labels, err := store.TemplateLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"enterprise", "non_profit", "startup", "tech_company"}, labels)

	tmpl, found, err := store.Template("startup")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, tmpl.TechFocus)
	assert.Contains(t, tmpl.BenefitsEmphasis, "equity")

	_, found, err = store.Template("government")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = os.Stat(filepath.Join(filepath.Dir(store.Path()), TemplatesFile))
	assert.True(t, os.IsNotExist(err), "templates file should never be written")
}

func TestTemplatesFromFile(t *testing.T) {
	store := newTestStore(t)
	content := `{"agency": {"culture_keywords": ["client-first"], "benefits_emphasis": ["bonus"], "tech_focus": false}}`
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(store.Path()), TemplatesFile), []byte(content), 0600))

	labels, err := store.TemplateLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"agency"}, labels)

	tmpl, found, err := store.Template("agency")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"client-first"}, tmpl.CultureKeywords)
}

func TestTemplatesCorrupt(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(store.Path()), TemplatesFile), []byte("{"), 0600))

	_, err := store.Templates()
	require.Error(t, err)
	assert.True(t, errs.IsPersistence(err))
}
