package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pinkypromises/adminctl/internal/client/models"
	"github.com/pinkypromises/adminctl/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 5*time.Second, logging.NewNop())
	require.NoError(t, err)
	return c, srv
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("api.example.com", time.Second, logging.NewNop())
	require.Error(t, err)
}

func TestClient_SessionCookiePersistsAcrossCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]string{
			"adminId": "a1", "email": "admin@example.com", "name": "Admin",
		})
	})
	var gotCookie string
	mux.HandleFunc("GET /admin/me", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			gotCookie = c.Value
		}
		_ = json.NewEncoder(w).Encode(models.Admin{ID: "a1", AdminID: "a1", Name: "Admin"})
	})

	c, _ := newTestClient(t, mux)
	auth := NewAuth(c)

	admin, err := auth.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "a1", admin.AdminID)
	require.Equal(t, "Admin", admin.Name)

	_, err = auth.CurrentAdmin(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc123", gotCookie)
}

func TestClient_SetsRequestIDHeader(t *testing.T) {
	orig := newRequestID
	newRequestID = func() string { return "fixed-id" }
	t.Cleanup(func() { newRequestID = orig })

	var got string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, NewGifts(c).SendGift(context.Background()))
	require.Equal(t, "fixed-id", got)
}

func TestClient_StructuredErrorSurfacesVerbatim(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Duplicate version"})
	}))

	_, err := NewVersions(c).Create(context.Background(), models.CreateAppVersion{
		Version: "1.0.0", DownloadURL: "https://dl.example.com/1.0.0",
	})
	require.Error(t, err)

	var ge *Error
	require.ErrorAs(t, err, &ge)
	require.Equal(t, http.StatusConflict, ge.Status)
	require.Equal(t, "Duplicate version", ge.Message)
	require.Equal(t, "Duplicate version", DisplayMessage(err, "Failed to create app version"))
}

func TestClient_NonJSONErrorBodyFallsBack(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))

	_, err := NewInventory(c).Gifts(context.Background())
	require.Error(t, err)
	require.Equal(t, "Failed to load gifts", DisplayMessage(err, "Failed to load gifts"))
}

func TestClient_TransportErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c, err := New(srv.URL, time.Second, logging.NewNop())
	require.NoError(t, err)

	_, lerr := NewInventory(c).Gifts(context.Background())
	require.Error(t, lerr)
	require.True(t, IsTransport(lerr))
	require.Equal(t, "Failed to load gifts", DisplayMessage(lerr, "Failed to load gifts"))
}

func TestDisplayMessage_LocalErrorsShownVerbatim(t *testing.T) {
	err := errors.New("notification title is required")
	require.Equal(t, "notification title is required", DisplayMessage(err, "Failed to send notifications"))
}

func TestAuth_CurrentAdminUnauthenticatedIsNilNotError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no session"})
	}))

	admin, err := NewAuth(c).CurrentAdmin(context.Background())
	require.NoError(t, err)
	require.Nil(t, admin)
}

func TestVersions_AllDecodesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/version/all", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"versions": []models.AppVersion{
				{ID: "v2", Version: "1.1.0", DownloadURL: "https://dl/1.1.0", Mandatory: true},
				{ID: "v1", Version: "1.0.0", DownloadURL: "https://dl/1.0.0"},
			},
		})
	}))

	vs, err := NewVersions(c).All(context.Background())
	require.NoError(t, err)
	require.Len(t, vs, 2)
	require.Equal(t, "1.1.0", vs[0].Version)
	require.True(t, vs[0].Mandatory)
}

func TestVersions_LatestAndByID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/version/latest":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"latestVersion": models.AppVersion{ID: "v2", Version: "1.1.0"},
			})
		case "/admin/version/v1":
			_ = json.NewEncoder(w).Encode(models.AppVersion{ID: "v1", Version: "1.0.0"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	latest, err := NewVersions(c).Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1.1.0", latest.Version)

	v, err := NewVersions(c).ByID(context.Background(), "v1")
	require.NoError(t, err)
	require.Equal(t, "1.0.0", v.Version)
}

func TestVersions_DeleteHitsDeletePath(t *testing.T) {
	var method, path string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, NewVersions(c).Delete(context.Background(), "v42"))
	require.Equal(t, http.MethodDelete, method)
	require.Equal(t, "/admin/version/v42/delete", path)
}

func TestInventory_AddGiftSendsPayload(t *testing.T) {
	var got map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]models.Gift{
			"gift": {ID: "g1", Name: got["name"], Value: got["value"]},
		})
	}))

	gift, err := NewInventory(c).AddGift(context.Background(), "Candle", "12.50", "smells nice")
	require.NoError(t, err)
	require.Equal(t, "g1", gift.ID)
	require.Equal(t, "Candle", got["name"])
	require.Equal(t, "smells nice", got["message"])
}

func TestPeriod_NumericIDsInPaths(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	p := NewPeriod(c)
	prio := 3
	require.NoError(t, p.UpdateAid(context.Background(), 7, models.PeriodAidInput{Priority: &prio}))
	require.NoError(t, p.DeleteLookout(context.Background(), 12))
	require.NoError(t, p.DeactivateUser(context.Background(), 5))

	require.Equal(t, []string{
		"PUT /admin/period/aid/7",
		"DELETE /admin/period/lookout/12",
		"DELETE /admin/period/user/5",
	}, paths)
}

func TestPeriod_UsersDecodesBareArray(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.PeriodUser{
			{ID: 1, Username: "ana", DefaultCycleLength: 28, DefaultPeriodLength: 5, IsActive: true},
		})
	}))

	users, err := NewPeriod(c).Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "ana", users[0].Username)
}

func TestNotifications_ValidationNeverReachesWire(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := NewNotifications(c).Broadcast(context.Background(), models.Notification{
		Title: "t", Body: "b", Type: "bogus",
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestRecipient_StatusEndpoints(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipient/gifts-received":
			_ = json.NewEncoder(w).Encode(map[string]int{"giftsReceived": 7})
		case "/recipient/gifts-status":
			_ = json.NewEncoder(w).Encode(map[string]bool{"isGiftsOn": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	n, err := NewRecipients(c).GiftsReceived(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, n)

	on, err := NewRecipients(c).GiftsStatus(context.Background())
	require.NoError(t, err)
	require.True(t, on)
}

func TestRecipient_CartReturnsItemsAndTotal(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"cartDetails": []models.CartItem{{ID: "c1", Item: "Roses", Value: 25}},
			"total":       25.0,
		})
	}))

	items, total, err := NewRecipients(c).Cart(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 25.0, total)
}
