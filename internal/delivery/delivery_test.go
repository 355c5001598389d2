package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

// Minimal in-memory repos, enough to drive the auth and brand flows through
// the real router.

type fakeUsers struct {
	nextID int
	byID   map[int]models.User
}

func (f *fakeUsers) InsertUser(_ context.Context, u *models.User) (*models.User, error) {
	f.nextID++
	u.ID = f.nextID
	f.byID[u.ID] = *u
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return &u, nil
	}
	return nil, nil
}

type fakeSessions struct {
	byToken map[string]models.Session
}

func (f *fakeSessions) InsertSession(_ context.Context, s *models.Session) error {
	f.byToken[s.Token] = *s
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context, token string) (*models.Session, error) {
	if s, ok := f.byToken[token]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

func (f *fakeSessions) DeleteExpiredSessions(_ context.Context, now time.Time) (int, error) {
	return 0, nil
}

type fakeBrands struct {
	nextID int
	byID   map[int]models.Brand
}

func (f *fakeBrands) InsertBrand(_ context.Context, b *models.Brand) (*models.Brand, error) {
	f.nextID++
	b.ID = f.nextID
	f.byID[b.ID] = *b
	return b, nil
}

func (f *fakeBrands) GetBrandByID(_ context.Context, id int) (*models.Brand, error) {
	if b, ok := f.byID[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeBrands) ListBrands(_ context.Context, ownerID int) ([]models.Brand, error) {
	var out []models.Brand
	for _, b := range f.byID {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBrands) UpdateBrand(_ context.Context, b *models.Brand) error {
	f.byID[b.ID] = *b
	return nil
}

func (f *fakeBrands) DeleteBrand(_ context.Context, id int) error {
	delete(f.byID, id)
	return nil
}

type testServer struct {
	router chi.Router
	auth   *domain.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	zl := logger.NewZapLogger(zap.NewNop().Sugar())

	users := &fakeUsers{byID: map[int]models.User{}}
	sessions := &fakeSessions{byToken: map[string]models.Session{}}
	auth := domain.NewAuthService(users, sessions, time.Hour)
	brands := domain.NewBrandService(&fakeBrands{byID: map[int]models.Brand{}})

	ah := NewAuthHandler(auth, false, zl)
	r := chi.NewRouter()
	r.Post("/api/register", ah.Register)
	r.Post("/api/login", ah.Login)
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(auth, zl))
		r.Get("/api/me", ah.Me)

		bh := NewBrandHandler(brands, zl)
		r.Route("/api/brands", func(r chi.Router) {
			r.Post("/", bh.Create)
			r.Get("/", bh.List)
			r.Get("/{id}", bh.Get)
			r.Delete("/{id}", bh.Delete)
		})
	})
	return &testServer{router: r, auth: auth}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"email": email, "name": "Tester", "password": "longenough",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Session struct {
			Token string `json:"token"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Session.Token)
	return resp.Session.Token
}

func TestRegisterSetsCookieAndSession(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"email": "a@b.com", "name": "A", "password": "longenough",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// the password hash must never leak
	assert.NotContains(t, w.Body.String(), "passwordHash")
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/me", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := s.register(t, "a@b.com")
	w = s.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
}

func TestErrorShape(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "a@b.com")

	w := s.do(t, http.MethodGet, "/api/brands/42", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestBrandCRUDOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "a@b.com")

	w := s.do(t, http.MethodPost, "/api/brands", token, map[string]any{
		"name": "Acme", "palette": []string{"#112233"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Acme", created.Name)

	// bad palette rejected
	w = s.do(t, http.MethodPost, "/api/brands", token, map[string]any{
		"name": "Bad", "palette": []string{"red"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/brands", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// another user sees nothing
	other := s.register(t, "b@b.com")
	w = s.do(t, http.MethodGet, "/api/brands", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/brands/1", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
