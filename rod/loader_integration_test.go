//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/outline"
	"github.com/fwojciec/outline/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Loader implements outline.Loader.
var _ outline.Loader = (*rod.Loader)(nil)

const examplePage = `<!DOCTYPE html>
<html>
<head><title>Example Domain</title></head>
<body>
  <h1>Hello World</h1>
  <section class="example-section">
    <p>This is an example.</p>
    <button aria-label="Next page" class="z2iX5wAef9nHv">Next page</button>
    <form>
      <input type="text" id="searchInput" placeholder="Search...">
      <input type="email" id="emailInput" placeholder="Email...">
    </form>
  </section>
</body>
</html>`

func serve(t *testing.T, markup string) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(markup))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestLoader_Load_ExamplePage(t *testing.T) {
	t.Parallel()

	url := serve(t, examplePage)

	loader, err := rod.NewLoader()
	require.NoError(t, err)
	defer loader.Close()

	doc, err := loader.Load(context.Background(), url)
	require.NoError(t, err)

	expected := "h1 Hello World\n" +
		"section\n" +
		"  p This is an example.\n" +
		"  button(aria-label=\"Next page\") Next page\n" +
		"  form\n" +
		"    input(type=\"text\" placeholder=\"Search...\")\n" +
		"    input(type=\"email\" placeholder=\"Email...\")"
	assert.Equal(t, expected, outline.NewOutliner().Convert(doc))
}

func TestLoader_Load_FocusesSelector(t *testing.T) {
	t.Parallel()

	url := serve(t, examplePage)

	loader, err := rod.NewLoader(rod.WithFocus("#searchInput"))
	require.NoError(t, err)
	defer loader.Close()

	doc, err := loader.Load(context.Background(), url)
	require.NoError(t, err)

	assert.Contains(t, outline.NewOutliner().Convert(doc), `input(type="text" placeholder="Search..." focused)`)
}

func TestLoader_Load_MissingFocusTarget(t *testing.T) {
	t.Parallel()

	url := serve(t, examplePage)

	loader, err := rod.NewLoader(rod.WithFocus("#nope"))
	require.NoError(t, err)
	defer loader.Close()

	_, err = loader.Load(context.Background(), url)

	require.Error(t, err)
	assert.Equal(t, outline.ENOTFOUND, outline.ErrorCode(err))
}

func TestLoader_Load_CapturesScriptState(t *testing.T) {
	t.Parallel()

	url := serve(t, `<!DOCTYPE html>
<html><body>
<div id="menu" style="display:none"><a href="/secret">Secret</a></div>
<input type="checkbox" id="agree">
<input type="text" id="name">
<script>
document.getElementById('agree').checked = true;
document.getElementById('name').value = 'Ada';
</script>
</body></html>`)

	loader, err := rod.NewLoader(rod.WithRenderDelay(50 * time.Millisecond))
	require.NoError(t, err)
	defer loader.Close()

	doc, err := loader.Load(context.Background(), url)
	require.NoError(t, err)

	expected := "input(type=\"checkbox\" checked)\n" +
		"input(type=\"text\" value=\"Ada\")"
	assert.Equal(t, expected, outline.NewOutliner().Convert(doc))
}

func TestLoader_Load_LocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<body><h2>From disk</h2></body>`), 0o600))

	loader, err := rod.NewLoader(rod.WithStealth())
	require.NoError(t, err)
	defer loader.Close()

	doc, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "h2 From disk", outline.NewOutliner().Convert(doc))
}

func TestLoader_Load_ContextCancellation(t *testing.T) {
	t.Parallel()

	loader, err := rod.NewLoader()
	require.NoError(t, err)
	defer loader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = loader.Load(ctx, "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Load_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	loader, err := rod.NewLoader()
	require.NoError(t, err)

	require.NoError(t, loader.Close())
	require.NoError(t, loader.Close())

	_, err = loader.Load(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, outline.EINVALID, outline.ErrorCode(err))
	assert.Contains(t, outline.ErrorMessage(err), "closed")
}
