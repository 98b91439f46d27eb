package hotel

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
	"github.com/hotelsuite/hotelsuite/internal/session"
)

// mockAPIServer serves canned answers keyed by "METHOD path".
func mockAPIServer(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func jsonReply(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func newTestAPI(t *testing.T, srv *httptest.Server, opts ...apiclient.Option) (*API, *session.Store) {
	t.Helper()
	store := session.NewStore(session.NewMemoryStorage(nil))
	client := apiclient.New(srv.URL, store, opts...)
	return New(client, zerolog.Nop()), store
}

func TestLogin_ThenAuthorizedCall(t *testing.T) {
	var auth string
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /admins/login": func(w http.ResponseWriter, r *http.Request) {
			var req LoginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "admin@hotel.test", req.Email)
			assert.Equal(t, "s3cret", req.Password)
			jsonReply(http.StatusOK, `{"message":"ok","token":"abc123","user":{"id":1,"full_name":"Ana","email":"admin@hotel.test","role":"admin","is_approved":true}}`)(w, r)
		},
		"GET /api/rooms": func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			jsonReply(http.StatusOK, `[]`)(w, r)
		},
	})
	api, store := newTestAPI(t, srv)

	result, err := api.Auth.Login(context.Background(), "admin@hotel.test", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Token)
	assert.Equal(t, "Ana", result.User.FullName)

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc123", token)

	user, ok := api.Auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "1", user.ID)

	_, err = api.Rooms.List(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", auth)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	redirected := false
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /admins/login": jsonReply(http.StatusUnauthorized, `{"error":"Invalid email or password"}`),
	})
	api, store := newTestAPI(t, srv, apiclient.WithOnUnauthorized(func() { redirected = true }))

	result, err := api.Auth.Login(context.Background(), "admin@hotel.test", "wrong")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
	assert.False(t, redirected)

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestLogin_PendingApproval(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /admins/login": jsonReply(http.StatusOK, `{"token":"abc123","user":{"id":2,"email":"new@hotel.test","is_approved":0}}`),
	})
	api, store := newTestAPI(t, srv)

	result, err := api.Auth.Login(context.Background(), "new@hotel.test", "pw")
	assert.ErrorIs(t, err, ErrPendingApproval)
	require.NotNil(t, result)
	assert.Equal(t, "new@hotel.test", result.User.Email)

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestLogin_PendingApprovalClearsPreviousSession(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /admins/login": jsonReply(http.StatusOK, `{"token":"new-token","user":{"id":2,"is_approved":false}}`),
	})
	api, store := newTestAPI(t, srv)
	require.NoError(t, store.Set("old-admin-token", &session.User{ID: "1", IsApproved: true}))

	_, err := api.Auth.Login(context.Background(), "new@hotel.test", "pw")
	assert.ErrorIs(t, err, ErrPendingApproval)

	_, ok := store.Token()
	assert.False(t, ok)
	_, ok = store.User()
	assert.False(t, ok)
}

func TestLogin_AbsentApprovalIsPending(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /admins/login": jsonReply(http.StatusOK, `{"token":"abc123","user":{"id":2,"email":"new@hotel.test"}}`),
	})
	api, store := newTestAPI(t, srv)

	_, err := api.Auth.Login(context.Background(), "new@hotel.test", "pw")
	assert.ErrorIs(t, err, ErrPendingApproval)

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /admins/login": jsonReply(http.StatusOK, `{"message":"ok"}`),
	})
	api, _ := newTestAPI(t, srv)

	_, err := api.Auth.Login(context.Background(), "admin@hotel.test", "pw")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLogin_ValidatesInput(t *testing.T) {
	srv := mockAPIServer(t, nil)
	api, _ := newTestAPI(t, srv)

	_, err := api.Auth.Login(context.Background(), "not-an-email", "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"email", "password"}, verr.Fields)
}

func TestLogout(t *testing.T) {
	srv := mockAPIServer(t, nil)
	api, store := newTestAPI(t, srv)
	require.NoError(t, store.Set("abc123", &session.User{ID: "1"}))

	require.NoError(t, api.Auth.Logout())
	require.NoError(t, api.Auth.Logout())
	_, ok := api.Auth.CurrentUser()
	assert.False(t, ok)
}

func TestResource_ListEnvelopes(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/rooms": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			assert.Equal(t, "suite", r.URL.Query().Get("search"))
			jsonReply(http.StatusOK, `{"data":[{"id":1,"room_number":"101","price":"120.50"}],"total":11,"page":2,"limit":10}`)(w, r)
		},
		"GET /api/products": jsonReply(http.StatusOK, `[{"id":"p1","name":"Mug","price":9.5,"stock":3}]`),
		"GET /api/news":     jsonReply(http.StatusOK, `{"id":4,"title":"Opening"}`),
		"GET /api/gallery":  jsonReply(http.StatusOK, `null`),
	})
	api, _ := newTestAPI(t, srv)
	ctx := context.Background()

	rooms, err := api.Rooms.List(ctx, ListParams{Page: 2, Limit: 10, Search: "suite"})
	require.NoError(t, err)
	require.Len(t, rooms.Items, 1)
	assert.Equal(t, Amount(120.5), rooms.Items[0].Price)
	assert.Equal(t, 11, rooms.Total)

	products, err := api.Products.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, []Product{{ID: "p1", Name: "Mug", Price: 9.5, Stock: 3}}, products.Items)

	news, err := api.News.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, []News{{ID: "4", Title: "Opening"}}, news.Items)

	gallery, err := api.Gallery.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Empty(t, gallery.Items)
}

func TestResource_CRUD(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/categories/3":    jsonReply(http.StatusOK, `{"data":{"id":3,"name":"Books"}}`),
		"POST /api/categories":     jsonReply(http.StatusCreated, `{"id":5,"name":"Cafe"}`),
		"PUT /api/categories/5":    jsonReply(http.StatusOK, `{"id":5,"name":"Café"}`),
		"DELETE /api/categories/5": jsonReply(http.StatusOK, `{"message":"deleted"}`),
	})
	api, _ := newTestAPI(t, srv)
	ctx := context.Background()

	got, err := api.Categories.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Name)

	created, err := api.Categories.Create(ctx, Category{Name: "Cafe"})
	require.NoError(t, err)
	assert.Equal(t, ID("5"), created.ID)

	updated, err := api.Categories.Update(ctx, created.ID, Category{Name: "Café"})
	require.NoError(t, err)
	assert.Equal(t, "Café", updated.Name)

	deleted, err := api.Categories.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestResource_CreateWithFile(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/gallery": func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			jsonReply(http.StatusCreated, `{"id":1,"title":"`+r.FormValue("title")+`","image_url":"/uploads/pool.jpg"}`)(w, r)
		},
	})
	api, _ := newTestAPI(t, srv)

	form := apiclient.NewForm().Field("title", "Pool").File("image", "pool.jpg", strings.NewReader("jpeg"))
	item, err := api.Gallery.CreateWithFile(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "Pool", item.Title)
}

func TestResource_ServerError(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/bookings": jsonReply(http.StatusInternalServerError, `{"error":"db down"}`),
	})
	api, _ := newTestAPI(t, srv)

	page, err := api.Bookings.List(context.Background(), ListParams{})
	assert.Nil(t, page)
	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "db down", apiErr.Message)
}

func TestResource_SessionEnded(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/rooms":      jsonReply(http.StatusUnauthorized, `{}`),
		"DELETE /api/rooms/1": jsonReply(http.StatusUnauthorized, `{}`),
		"GET /api/rooms/1":    jsonReply(http.StatusUnauthorized, `{}`),
	})
	api, _ := newTestAPI(t, srv)
	ctx := context.Background()

	page, err := api.Rooms.List(ctx, ListParams{})
	assert.NoError(t, err)
	assert.Nil(t, page)

	room, err := api.Rooms.Get(ctx, "1")
	assert.NoError(t, err)
	assert.Nil(t, room)

	deleted, err := api.Rooms.Delete(ctx, "1")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestCollections(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/vision-mission": jsonReply(http.StatusOK, `{"id":1,"vision":"Rest","mission":"Serve"}`),
	})
	api, _ := newTestAPI(t, srv)

	assert.Equal(t, []string{"bookings", "categories", "gallery", "news", "products", "rooms", "vision-mission"}, api.CollectionNames())

	c, ok := api.Collection("vision-mission")
	require.True(t, ok)
	page, err := c.Browse(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, []string{"1", "Rest", "Serve"}, page.Items[0].Row())

	_, ok = api.Collection("spa")
	assert.False(t, ok)
}

func TestPublicBookings(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /public/bookings": func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			var req BookingRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			jsonReply(http.StatusCreated, `{"data":{"id":77,"guest_name":"`+req.GuestName+`","status":"pending"}}`)(w, r)
		},
	})
	api, _ := newTestAPI(t, srv)

	booking, err := api.PublicBookings.Create(context.Background(), BookingRequest{
		RoomID:    "12",
		GuestName: "Dina",
		Email:     "dina@example.com",
		CheckIn:   "2026-11-01",
		CheckOut:  "2026-11-04",
		Guests:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, ID("77"), booking.ID)
	assert.Equal(t, "pending", booking.Status)
}

func TestPublicBookings_Validation(t *testing.T) {
	srv := mockAPIServer(t, nil)
	api, _ := newTestAPI(t, srv)

	_, err := api.PublicBookings.Create(context.Background(), BookingRequest{
		RoomID:    "12",
		GuestName: "Dina",
		Email:     "dina@example.com",
		CheckIn:   "2026-11-04",
		CheckOut:  "2026-11-01",
		Guests:    2,
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"checkout"}, verr.Fields)
}

func TestDashboard(t *testing.T) {
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/products":   jsonReply(http.StatusOK, `{"data":[{"id":1,"name":"Mug"}],"total":30}`),
		"GET /api/categories": jsonReply(http.StatusOK, `[{"id":1,"name":"Souvenir"},{"id":2,"name":"Books"}]`),
		"GET /api/bookings":   jsonReply(http.StatusInternalServerError, `{"error":"db down"}`),
	})
	api, _ := newTestAPI(t, srv)

	summary, err := api.Dashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 30, summary.ProductCount)
	assert.Equal(t, 2, summary.CategoryCount)
	assert.Empty(t, summary.Bookings)
	assert.Contains(t, summary.Errors["bookings"], "db down")
}

func TestDashboard_SessionEnded(t *testing.T) {
	var redirects atomic.Int32
	srv := mockAPIServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/products":   jsonReply(http.StatusOK, `[]`),
		"GET /api/categories": jsonReply(http.StatusUnauthorized, `{}`),
		"GET /api/bookings":   jsonReply(http.StatusOK, `[]`),
	})
	api, _ := newTestAPI(t, srv, apiclient.WithOnUnauthorized(func() { redirects.Add(1) }))

	summary, err := api.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, int32(1), redirects.Load())
}

func TestAmountAndID(t *testing.T) {
	var v struct {
		ID    ID     `json:"id"`
		Price Amount `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"price":"19.90"}`), &v))
	assert.Equal(t, ID("42"), v.ID)
	assert.Equal(t, "19.90", v.Price.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"r-1","price":7}`), &v))
	assert.Equal(t, ID("r-1"), v.ID)
	assert.Equal(t, Amount(7), v.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price":"cheap"}`), &v))
}
