package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store/drivers/sqlite"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/cryptox"
	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "bucketlist-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// testServer wires a full router over a temp database and runs it under
// httptest. Tests drive it through the apiclient SDK exactly like an
// external consumer would.
type testServer struct {
	Client *apiclient.Client
	Tokens *jwtx.HS256
	Token  *service.TokenService
	Store  *sqlite.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens := jwtx.NewHS256([]byte("test-secret"), "bucketlist-test")
	tokenService := &service.TokenService{
		Tokens:      tokens,
		Revocations: service.NewRevocationList(),
		AccessTTL:   5 * time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(tokens, "test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.TokenService = tokenService
	router.BucketlistService = &service.BucketlistService{Store: st}
	router.ItemService = &service.ItemService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		Client: apiclient.NewClient(srv.URL),
		Tokens: tokens,
		Token:  tokenService,
		Store:  st,
	}
}

func requireAPIError(t *testing.T, err error, status int, code string) *apiclient.APIError {
	t.Helper()

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	reg, err := ts.Client.Register(ctx, "flow@example.com", "s3cret")
	require.NoError(t, err)
	require.Positive(t, reg.ID)
	require.Equal(t, "flow@example.com", reg.Email)

	session, err := ts.Client.Login(ctx, "flow@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())

	// Authenticated call works.
	_, err = session.CreateBucketlist(ctx, "Before logout")
	require.NoError(t, err)

	// Logout revokes the token; the next call is a 401.
	require.NoError(t, session.Logout(ctx))

	_, err = session.ListBucketlists(ctx, "", 0, 0)
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)

	// Logging out twice reports the revocation.
	err = session.Logout(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)

	// A fresh login works again; the account is untouched.
	session2, err := ts.Client.Login(ctx, "flow@example.com", "s3cret")
	require.NoError(t, err)
	page, err := session2.ListBucketlists(ctx, "", 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	t.Run("blank fields listed", func(t *testing.T) {
		_, err := ts.Client.Register(ctx, "  ", "")
		apiErr := requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorCodeInvalidRequest)
		require.Equal(t, []string{"email", "password"}, apiErr.Fields)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := ts.Client.Register(ctx, "dup@example.com", "s3cret")
		require.NoError(t, err)

		_, err = ts.Client.Register(ctx, "dup@example.com", "other")
		requireAPIError(t, err, http.StatusConflict, apiclient.ErrorCodeAlreadyExists)
	})
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "carol@example.com", "right")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := ts.Client.Login(ctx, "carol@example.com", "wrong")
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidRequest)
		require.Contains(t, apiErr.Description, "verify credentials")
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		_, err := ts.Client.Login(ctx, "nobody@example.com", "right")
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidRequest)
		require.Contains(t, apiErr.Description, "verify credentials")
	})
}

func TestResetPasswordFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "reset@example.com", "old-pass")
	require.NoError(t, err)

	session, err := ts.Client.Login(ctx, "reset@example.com", "old-pass")
	require.NoError(t, err)

	require.NoError(t, session.ResetPassword(ctx, "new-pass"))

	// The token that performed the reset is revoked.
	_, err = session.ListBucketlists(ctx, "", 0, 0)
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)

	// Old password no longer works, the new one does.
	_, err = ts.Client.Login(ctx, "reset@example.com", "old-pass")
	requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidRequest)

	_, err = ts.Client.Login(ctx, "reset@example.com", "new-pass")
	require.NoError(t, err)

	t.Run("blank password rejected", func(t *testing.T) {
		s, err := ts.Client.Login(ctx, "reset@example.com", "new-pass")
		require.NoError(t, err)
		err = s.ResetPassword(ctx, "   ")
		requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorCodeInvalidRequest)
	})
}

func TestBucketlistEndpoints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "lists@example.com", "s3cret")
	require.NoError(t, err)
	session, err := ts.Client.Login(ctx, "lists@example.com", "s3cret")
	require.NoError(t, err)

	created, err := session.CreateBucketlist(ctx, "Travel")
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.Equal(t, "Travel", created.Name)
	require.False(t, created.CreatedAt.IsZero())

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := session.CreateBucketlist(ctx, "Travel")
		requireAPIError(t, err, http.StatusConflict, apiclient.ErrorCodeAlreadyExists)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := session.CreateBucketlist(ctx, "   ")
		apiErr := requireAPIError(t, err, http.StatusBadRequest, apiclient.ErrorCodeInvalidRequest)
		require.Equal(t, []string{"name"}, apiErr.Fields)
	})

	t.Run("get includes items", func(t *testing.T) {
		_, err := session.AddItem(ctx, created.ID, "Visit Kampala")
		require.NoError(t, err)

		got, err := session.GetBucketlist(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		require.Equal(t, "Visit Kampala", got.Items[0].Name)
	})

	t.Run("rename and delete", func(t *testing.T) {
		renamed, err := session.RenameBucketlist(ctx, created.ID, "Adventures")
		require.NoError(t, err)
		require.Equal(t, "Adventures", renamed.Name)

		require.NoError(t, session.DeleteBucketlist(ctx, created.ID))

		_, err = session.GetBucketlist(ctx, created.ID)
		requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)
	})

	t.Run("unknown and malformed ids are 404", func(t *testing.T) {
		_, err := session.GetBucketlist(ctx, 99999)
		requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)

		resp, err := ts.Client.HTTPClient.Get(ts.Client.BaseURL + "/bucketlists/not-a-number")
		require.NoError(t, err)
		defer resp.Body.Close()
		// Unauthenticated, so the middleware answers first.
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestBucketlistSearchAndPagination(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "search@example.com", "s3cret")
	require.NoError(t, err)
	session, err := ts.Client.Login(ctx, "search@example.com", "s3cret")
	require.NoError(t, err)

	names := []string{"Travel plans", "Reading list", "Travel gear", "Recipes"}
	for _, n := range names {
		_, err := session.CreateBucketlist(ctx, n)
		require.NoError(t, err)
	}

	t.Run("search by substring", func(t *testing.T) {
		page, err := session.ListBucketlists(ctx, "travel", 0, 0)
		require.NoError(t, err)
		require.Equal(t, int64(2), page.Total)
		require.Len(t, page.Bucketlists, 2)
	})

	t.Run("pagination window", func(t *testing.T) {
		first, err := session.ListBucketlists(ctx, "", 1, 3)
		require.NoError(t, err)
		require.Len(t, first.Bucketlists, 3)
		require.Equal(t, 1, first.Page)
		require.Equal(t, 3, first.Limit)
		require.Equal(t, int64(4), first.Total)

		second, err := session.ListBucketlists(ctx, "", 2, 3)
		require.NoError(t, err)
		require.Len(t, second.Bucketlists, 1)

		// Newest first, no overlap between pages.
		require.Equal(t, "Recipes", first.Bucketlists[0].Name)
		require.NotEqual(t, first.Bucketlists[0].ID, second.Bucketlists[0].ID)
	})
}

func TestOwnershipIsolationOverHTTP(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	alice, err := ts.Client.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = ts.Client.Register(ctx, "mallory@example.com", "s3cret")
	require.NoError(t, err)
	mallory, err := ts.Client.Login(ctx, "mallory@example.com", "s3cret")
	require.NoError(t, err)

	b, err := alice.CreateBucketlist(ctx, "Private")
	require.NoError(t, err)
	it, err := alice.AddItem(ctx, b.ID, "Secret item")
	require.NoError(t, err)

	// Every access through the other account is a plain 404.
	_, err = mallory.GetBucketlist(ctx, b.ID)
	requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)
	_, err = mallory.GetItem(ctx, b.ID, it.ID)
	requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)
	err = mallory.DeleteBucketlist(ctx, b.ID)
	requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)

	// And mallory's listing never includes it.
	page, err := mallory.ListBucketlists(ctx, "", 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), page.Total)
}

func TestItemEndpoints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "items@example.com", "s3cret")
	require.NoError(t, err)
	session, err := ts.Client.Login(ctx, "items@example.com", "s3cret")
	require.NoError(t, err)

	b, err := session.CreateBucketlist(ctx, "Bucket")
	require.NoError(t, err)

	created, err := session.AddItem(ctx, b.ID, "Skydive")
	require.NoError(t, err)
	require.Equal(t, b.ID, created.BucketlistID)

	t.Run("duplicate item name conflicts", func(t *testing.T) {
		_, err := session.AddItem(ctx, b.ID, "Skydive")
		requireAPIError(t, err, http.StatusConflict, apiclient.ErrorCodeAlreadyExists)
	})

	t.Run("list and get", func(t *testing.T) {
		items, err := session.ListItems(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)

		got, err := session.GetItem(ctx, b.ID, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Skydive", got.Name)
	})

	t.Run("rename and delete", func(t *testing.T) {
		renamed, err := session.RenameItem(ctx, b.ID, created.ID, "Skydive in NZ")
		require.NoError(t, err)
		require.Equal(t, "Skydive in NZ", renamed.Name)

		require.NoError(t, session.DeleteItem(ctx, b.ID, created.ID))
		_, err = session.GetItem(ctx, b.ID, created.ID)
		requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)
	})

	t.Run("unknown bucketlist is 404", func(t *testing.T) {
		_, err := session.ListItems(ctx, 99999)
		requireAPIError(t, err, http.StatusNotFound, apiclient.ErrorCodeNotFound)
	})
}

func TestTokenFailuresOverHTTP(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		_, err := ts.Client.Session("").ListBucketlists(ctx, "", 0, 0)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)
		require.Contains(t, apiErr.Description, "missing bearer token")
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := ts.Tokens.IssueAt(1, time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = ts.Client.Session(expired).ListBucketlists(ctx, "", 0, 0)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)
		require.Contains(t, apiErr.Description, "expired")
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ts.Client.Session("not.a.jwt").ListBucketlists(ctx, "", 0, 0)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)
		require.Contains(t, apiErr.Description, "malformed")
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		forged, err := jwtx.NewHS256([]byte("other-secret"), "bucketlist-test").IssueAt(1, time.Minute, time.Now())
		require.NoError(t, err)

		_, err = ts.Client.Session(forged).ListBucketlists(ctx, "", 0, 0)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, apiclient.ErrorCodeInvalidToken)
		require.Contains(t, apiErr.Description, "signature")
	})
}

func TestCollectionPathsAcceptTrailingSlash(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	_, err := ts.Client.Register(ctx, "slash@example.com", "s3cret")
	require.NoError(t, err)
	session, err := ts.Client.Login(ctx, "slash@example.com", "s3cret")
	require.NoError(t, err)

	do := func(t *testing.T, method, path, body string) *http.Response {
		t.Helper()
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, ts.Client.BaseURL+path, reader)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+session.AccessToken())
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := ts.Client.HTTPClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	resp := do(t, http.MethodPost, "/bucketlists/", `{"name":"Trailing"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created apiclient.Bucketlist
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, "Trailing", created.Name)

	resp = do(t, http.MethodGet, "/bucketlists/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	itemsPath := fmt.Sprintf("/bucketlists/%d/items/", created.ID)
	resp = do(t, http.MethodPost, itemsPath, `{"name":"First"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodGet, itemsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The slash-less forms stay the canonical surface.
	list, err := session.GetBucketlist(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	health, err := ts.Client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	resp, err := ts.Client.HTTPClient.Get(ts.Client.BaseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("readyz degrades when the database is gone", func(t *testing.T) {
		require.NoError(t, ts.Store.Close())

		resp, err := ts.Client.HTTPClient.Get(ts.Client.BaseURL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
