package app

import (
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/flightdesk/internal/config"
	"github.com/nfrund/flightdesk/internal/domain"
	"github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/modules/mypage"
	"github.com/nfrund/flightdesk/internal/rendering"
)

func testConfig() *config.Config {
	return &config.Config{
		AppAddr:         ":0",
		APIBaseURL:      "http://api.example.test",
		APITimeout:      time.Second,
		SessionSecret:   "a-very-secret-key-for-testing-!",
		LoginPath:       "/login",
		EditProfilePath: "/editProfile",
	}
}

func TestNewContainer(t *testing.T) {
	i, err := NewContainer(testConfig(), NewModules())
	require.NoError(t, err)

	_, err = do.Invoke[domain.ReservationAPI](i)
	assert.NoError(t, err)
	_, err = do.Invoke[middleware.IdentityResolver](i)
	assert.NoError(t, err)
	_, err = do.Invoke[middleware.TokenSource](i)
	assert.NoError(t, err)
	_, err = do.Invoke[rendering.Renderer](i)
	assert.NoError(t, err)
	_, err = do.Invoke[*mypage.Loader](i)
	assert.NoError(t, err)
}

func TestNewContainer_BadBaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.APIBaseURL = "relative/path"

	i, err := NewContainer(cfg, NewModules())
	require.NoError(t, err, "providers are lazy")

	_, err = do.Invoke[*mypage.Loader](i)
	assert.Error(t, err)
}
