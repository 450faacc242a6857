package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := &Session{ID: "abc", UserID: 7, CreatedAt: time.Now().Unix()}
	if err := store.Save(ctx, s, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != 7 {
		t.Fatalf("got user id %d, want 7", got.UserID)
	}

	// Mutating the returned record must not affect the stored one
	got.UserID = 99
	again, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.UserID != 7 {
		t.Fatalf("stored record mutated, user id %d", again.UserID)
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "abc"); err != ErrNotFound {
		t.Fatalf("get after delete: %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := &Session{ID: "short", UserID: 1}
	if err := store.Save(ctx, s, -time.Second); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Get(ctx, "short"); err != ErrNotFound {
		t.Fatalf("expired session returned: %v, want ErrNotFound", err)
	}
}

// testContext builds a gin context with a recorder and a bare request
func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

// contextWithCookies builds a gin context whose request carries cookies
func contextWithCookies(t *testing.T, cookies []*http.Cookie) *gin.Context {
	t.Helper()
	c, _ := testContext(t)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c
}

func TestManagerStartAndCurrent(t *testing.T) {
	m := NewManager(NewMemoryStore(), "test-secret", time.Hour, false)

	c, w := testContext(t)
	started, err := m.Start(c, 42)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !started.Authenticated() {
		t.Fatal("started session should be authenticated")
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	c2 := contextWithCookies(t, cookies)
	got, err := m.Current(c2)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got.ID != started.ID || got.UserID != 42 {
		t.Fatalf("resolved session %+v, want id %s user 42", got, started.ID)
	}
}

func TestManagerRejectsForgedCookie(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, "real-secret", time.Hour, false)
	forger := NewManager(store, "other-secret", time.Hour, false)

	c, w := testContext(t)
	if _, err := forger.Start(c, 42); err != nil {
		t.Fatalf("start: %v", err)
	}

	// A cookie signed with a different secret must not resolve
	c2 := contextWithCookies(t, w.Result().Cookies())
	if _, err := m.Current(c2); err != ErrNotFound {
		t.Fatalf("forged cookie resolved: %v, want ErrNotFound", err)
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager(NewMemoryStore(), "test-secret", time.Hour, false)

	c, w := testContext(t)
	if _, err := m.Start(c, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	cookies := w.Result().Cookies()

	c2 := contextWithCookies(t, cookies)
	m.Clear(c2)

	// The record is gone even if the old cookie is replayed
	c3 := contextWithCookies(t, cookies)
	if _, err := m.Current(c3); err != ErrNotFound {
		t.Fatalf("cleared session resolved: %v, want ErrNotFound", err)
	}
}

func TestFlashesRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryStore(), "test-secret", time.Hour, false)

	c, w := testContext(t)
	m.Flash(c, "first")
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("flash on a fresh request should start an anonymous session")
	}

	c2 := contextWithCookies(t, cookies)
	s, err := m.Current(c2)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("flash-only session should not be authenticated")
	}

	flashes := m.PopFlashes(c2, s)
	if len(flashes) != 1 || flashes[0] != "first" {
		t.Fatalf("flashes = %v, want [first]", flashes)
	}

	// Popped flashes are gone on the next read
	c3 := contextWithCookies(t, cookies)
	s2, err := m.Current(c3)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got := m.PopFlashes(c3, s2); len(got) != 0 {
		t.Fatalf("flashes popped twice: %v", got)
	}
}
