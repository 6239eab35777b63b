package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelworks-backend/internal/config"
)

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 20000)
	require.NoError(t, err)
	return resp
}

func TestSubmitContactRelaysFormFields(t *testing.T) {
	var calls atomic.Int32
	var gotForm map[string]string

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.Form {
			gotForm[k] = r.Form.Get(k)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer relay.Close()

	cfg := &config.Config{
		ContactRelayURL: relay.URL,
		ContactSubject:  "New Contact Form Submission",
	}
	app := fiber.New()
	app.Post("/api/contact", SubmitContactHandler(cfg))

	resp := postJSON(t, app, "/api/contact", SubmitRequest{
		FirstName:   "Asha",
		LastName:    "Nair",
		Email:       "asha@example.com",
		Phone:       "+911234567890",
		ProjectType: "security-doors",
		Message:     "Need a quote for 10 doors",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, "New Contact Form Submission", gotForm["_subject"])
	assert.Equal(t, "false", gotForm["_captcha"])
	assert.Equal(t, "table", gotForm["_template"])
	assert.Equal(t, "Asha", gotForm["first_name"])
	assert.Equal(t, "Need a quote for 10 doors", gotForm["message"])
}

func TestSubmitContactValidationBlocksRelayCall(t *testing.T) {
	var calls atomic.Int32
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer relay.Close()

	cfg := &config.Config{ContactRelayURL: relay.URL}
	app := fiber.New()
	app.Post("/api/contact", SubmitContactHandler(cfg))

	cases := []SubmitRequest{
		{LastName: "Nair", Email: "a@b.com", Message: "hi"},      // missing first name
		{FirstName: "Asha", Email: "a@b.com", Message: "hi"},     // missing last name
		{FirstName: "Asha", LastName: "Nair", Message: "hi"},     // missing email
		{FirstName: "Asha", LastName: "Nair", Email: "not-an-email", Message: "hi"},
		{FirstName: "Asha", LastName: "Nair", Email: "a@b.com"},  // missing message
		{FirstName: "Asha", LastName: "Nair", Email: "a@b.com", Message: "   "},
	}
	for _, c := range cases {
		resp := postJSON(t, app, "/api/contact", c)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	assert.Equal(t, int32(0), calls.Load(), "validation failures must never reach the relay")
}

func TestSubmitContactRelayFailure(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer relay.Close()

	cfg := &config.Config{ContactRelayURL: relay.URL}
	app := fiber.New()
	app.Post("/api/contact", SubmitContactHandler(cfg))

	resp := postJSON(t, app, "/api/contact", SubmitRequest{
		FirstName: "Asha", LastName: "Nair", Email: "a@b.com", Message: "hi",
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
