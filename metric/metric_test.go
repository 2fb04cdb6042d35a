package metric

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-sign/app"
)

type testConfig struct {
	Config
}

func (c testConfig) Init(a *app.App) error { return nil }
func (c testConfig) Name() string          { return "config" }
func (c testConfig) GetMetric() Config     { return c.Config }

func TestMetric(t *testing.T) {
	t.Run("without endpoint", func(t *testing.T) {
		a := new(app.App)
		m := New()
		a.Register(m)
		ctx := context.Background()
		require.NoError(t, a.Start(ctx))

		families, err := m.Registry().Gather()
		require.NoError(t, err)
		var names []string
		for _, f := range families {
			names = append(names, f.GetName())
		}
		assert.Contains(t, names, "anysign_versions")
		require.NoError(t, a.Close(ctx))
	})
	t.Run("with endpoint", func(t *testing.T) {
		a := new(app.App)
		m := New().(*metric)
		a.Register(testConfig{Config{Addr: "127.0.0.1:0"}}).Register(m)
		ctx := context.Background()
		require.NoError(t, a.Start(ctx))
		require.NotEmpty(t, m.addr)

		resp, err := http.Get("http://" + m.addr + "/metrics")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "anysign_versions")

		require.NoError(t, a.Close(ctx))
	})
}
