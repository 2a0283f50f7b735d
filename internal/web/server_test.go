package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/content"
	"github.com/nicodeveloper97/portfolio/internal/session"
	"github.com/nicodeveloper97/portfolio/internal/view"
	"github.com/nicodeveloper97/portfolio/internal/visits"
)

const testToken = "test-admin-token"

type testEnv struct {
	router   *gin.Engine
	sessions *session.Manager
	visits   *visits.Store
	clock    *clock.Mock
}

func setupTest(t *testing.T, cfg session.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	site, err := view.NewSite(content.Default(), content.NewMarkdown())
	require.NoError(t, err)

	mock := clock.NewMock()
	cfg.Clock = mock
	sessions := session.NewManager(len(site.Content.Projects), cfg)
	t.Cleanup(sessions.Close)

	store, err := visits.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv, err := New(Options{
		Site:          site,
		Sessions:      sessions,
		Visits:        store,
		AdminToken:    testToken,
		Version:       "1.0.0",
		RetentionDays: 365,
	})
	require.NoError(t, err)

	return &testEnv{router: srv.Router(), sessions: sessions, visits: store, clock: mock}
}

func (e *testEnv) do(t *testing.T, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

var sessionAttr = regexp.MustCompile(`data-session="([^"]+)"`)

// mount loads the page and returns the session id embedded in it.
func (e *testEnv) mount(t *testing.T) string {
	t.Helper()
	rr := e.do(t, http.MethodGet, "/", map[string]string{"DNT": "1"})
	require.Equal(t, http.StatusOK, rr.Code)
	m := sessionAttr.FindStringSubmatch(rr.Body.String())
	require.Len(t, m, 2, "page has no session id")
	return m[1]
}

func decodeState(t *testing.T, rr *httptest.ResponseRecorder) view.State {
	t.Helper()
	var st view.State
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
	return st
}

func TestIndexMountsSession(t *testing.T) {
	env := setupTest(t, session.Config{})

	rr := env.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Contains(t, body, `<html lang="es">`)
	assert.Contains(t, body, "Hola, soy Nico")
	assert.Contains(t, body, "Light Mode")
	assert.Contains(t, body, "Gestión de estacionamiento")
	assert.Contains(t, body, "bg-black text-green-200")
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Equal(t, 1, env.sessions.Len())

	env.mount(t)
	assert.Equal(t, 2, env.sessions.Len(), "every page load mounts its own session")
}

func TestStateStartsAtZeroDark(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	rr := env.do(t, http.MethodGet, "/s/"+id+"/state", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"activeIndex":0,"direction":"forward","isDark":true}`, rr.Body.String())
}

func TestGoTo(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	rr := env.do(t, http.MethodPost, "/s/"+id+"/carousel/2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	st := decodeState(t, rr)
	assert.Equal(t, 2, st.ActiveIndex)
	assert.Equal(t, carousel.Backward, st.Direction)
}

func TestGoToRejectsBadIndex(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/s/"+id+"/carousel/1", nil).Code)

	for _, idx := range []string{"3", "-1", "abc"} {
		rr := env.do(t, http.MethodPost, "/s/"+id+"/carousel/"+idx, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "index %s", idx)
		assert.Contains(t, rr.Body.String(), "error")
	}

	st := decodeState(t, env.do(t, http.MethodGet, "/s/"+id+"/state", nil))
	assert.Equal(t, 1, st.ActiveIndex)
}

func TestGoToHTMXReturnsFragment(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	rr := env.do(t, http.MethodPost, "/s/"+id+"/carousel/1", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), `<section id="projects"`))
	assert.Contains(t, body, "Nuba")
	assert.Contains(t, body, `data-active="1"`)
	assert.Contains(t, body, "/s/"+id+"/carousel/2")
}

func TestToggleTheme(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	st := decodeState(t, env.do(t, http.MethodPost, "/s/"+id+"/theme", nil))
	assert.False(t, st.IsDark)

	st = decodeState(t, env.do(t, http.MethodPost, "/s/"+id+"/theme", nil))
	assert.True(t, st.IsDark)
}

func TestToggleThemeHTMXRendersLightPage(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	rr := env.do(t, http.MethodPost, "/s/"+id+"/theme", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `id="page"`)
	assert.Contains(t, body, "bg-gray-100 text-gray-900")
	assert.Contains(t, body, "Dark Mode")
	assert.NotContains(t, body, "<html")
}

func TestProjectsFragment(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	rr := env.do(t, http.MethodGet, "/s/"+id+"/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Gestión de estacionamiento")
	assert.Contains(t, rr.Body.String(), "Tailwind CSS")
}

func TestUnknownSession(t *testing.T) {
	env := setupTest(t, session.Config{})

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/s/nope/state"},
		{http.MethodPost, "/s/nope/theme"},
		{http.MethodPost, "/s/nope/carousel/0"},
		{http.MethodDelete, "/s/nope"},
	} {
		rr := env.do(t, req.method, req.path, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", req.method, req.path)
	}
}

func TestUnmount(t *testing.T) {
	env := setupTest(t, session.Config{})
	a := env.mount(t)
	b := env.mount(t)

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/s/"+a, nil).Code)
	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodPost, "/s/"+b+"/unmount", nil).Code)
	assert.Zero(t, env.sessions.Len())
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/s/"+a+"/state", nil).Code)
}

func TestRateLimit(t *testing.T) {
	env := setupTest(t, session.Config{Rate: 0.001, Burst: 2})
	id := env.mount(t)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/s/"+id+"/theme", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/s/"+id+"/carousel/1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, env.do(t, http.MethodPost, "/s/"+id+"/theme", nil).Code)

	// Reads are not limited.
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/s/"+id+"/state", nil).Code)
}

func TestTooManySessions(t *testing.T) {
	env := setupTest(t, session.Config{MaxSessions: 1})
	env.mount(t)
	rr := env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestLiveChannel(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	ts := httptest.NewServer(env.router)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/s/" + id + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	env.clock.Add(carousel.DefaultInterval)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg liveMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "transition", msg.Type)
	assert.Equal(t, carousel.CauseAuto, msg.Transition.Cause)
	assert.Equal(t, 1, msg.State.ActiveIndex)
	assert.True(t, msg.State.IsDark)
	assert.Contains(t, msg.HTML, "Nuba")

	// A manual pick is pushed too.
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/s/"+id+"/carousel/0", nil).Code)
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, carousel.CauseManual, msg.Transition.Cause)
	assert.Equal(t, 0, msg.State.ActiveIndex)

	// Closing the channel unmounts the session.
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	assert.Eventually(t, func() bool { return env.sessions.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestLiveChannelKeepsSessionMounted(t *testing.T) {
	env := setupTest(t, session.Config{IdleTTL: 30 * time.Minute})
	watched := env.mount(t)
	idle := env.mount(t)

	ts := httptest.NewServer(env.router)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/s/" + watched + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Nobody clicks for longer than the idle TTL.
	env.clock.Add(31 * time.Minute)
	assert.Equal(t, 1, env.sessions.Reap(env.clock.Now()))

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/s/"+idle+"/state", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/s/"+watched+"/carousel/2", nil).Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var msg liveMessage
		require.NoError(t, conn.ReadJSON(&msg), "live channel was closed")
		if msg.Transition.Cause == carousel.CauseManual {
			assert.Equal(t, 2, msg.State.ActiveIndex)
			break
		}
	}
}

func TestLiveChannelEndsOnUnmount(t *testing.T) {
	env := setupTest(t, session.Config{})
	id := env.mount(t)

	ts := httptest.NewServer(env.router)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/s/" + id + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, env.sessions.Unmount(id))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestVisitorTracking(t *testing.T) {
	env := setupTest(t, session.Config{})

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/wp-login.php", nil).Code)
	env.do(t, http.MethodGet, "/", nil)
	env.do(t, http.MethodGet, "/", map[string]string{"DNT": "1"})
	env.do(t, http.MethodGet, "/privacy", nil)

	assert.Eventually(t, func() bool {
		recent, err := env.visits.Recent(t.Context(), 10)
		return err == nil && len(recent) == 1
	}, 2*time.Second, 10*time.Millisecond)

	stats, err := env.visits.Stats(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
	require.Len(t, stats.TopPaths, 1)
	assert.Equal(t, "/", stats.TopPaths[0].Path)
}

func TestAdminAPI(t *testing.T) {
	env := setupTest(t, session.Config{})

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/admin/api/stats", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		env.do(t, http.MethodGet, "/admin/api/stats", map[string]string{"Authorization": "Bearer wrong"}).Code)

	auth := map[string]string{"Authorization": "Bearer " + testToken}
	rr := env.do(t, http.MethodGet, "/admin/api/stats", auth)
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Stats    visits.Stats `json:"stats"`
		Sessions int          `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Zero(t, body.Stats.TotalVisitors)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/admin/api/visitors?limit=5", auth).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/admin/api/visitors?limit=0", auth).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/admin/api/cleanup", auth).Code)

	rr = env.do(t, http.MethodGet, "/admin/export/stats", auth)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "admin-stats.json")
}

func TestAdminDisabledWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	site, err := view.NewSite(content.Default(), content.NewMarkdown())
	require.NoError(t, err)
	sessions := session.NewManager(3, session.Config{Clock: clock.NewMock()})
	defer sessions.Close()

	srv, err := New(Options{Site: site, Sessions: sessions})
	require.NoError(t, err)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Contains(t, rr.Body.String(), `"db":"disabled"`)
}

func TestHealthCheck(t *testing.T) {
	env := setupTest(t, session.Config{})
	env.mount(t)

	rr := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "portfolio", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, 1, response.Sessions)
	assert.Equal(t, "up", response.DB)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/healthz", nil).Code)
}

func TestStaticAndPrivacy(t *testing.T) {
	env := setupTest(t, session.Config{})

	rr := env.do(t, http.MethodGet, "/static/portfolio.js", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "sendBeacon")

	js := rr.Body.String()
	assert.Contains(t, js, "slide-exit")
	assert.Contains(t, js, "--exit-x")

	rr = env.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, rr.Body.String(), "@keyframes slide-out")

	rr = env.do(t, http.MethodGet, "/privacy", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "365 days")
}
