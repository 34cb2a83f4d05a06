// internal/common/odoo/crm_test.go
package odoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLead(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/v2/create/crm.lead", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"result":{"id":"crm-42","status":"created"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "prod", "secret-key")
	id, err := client.CreateLead(context.Background(), &Lead{
		Name:          "Quote request - Bob Jones",
		ContactName:   "Bob Jones",
		Phone:         "512-555-1234",
		Qualification: "hot",
	})

	require.NoError(t, err)
	assert.Equal(t, "crm-42", id)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "prod", gotPayload["db"])

	values := gotPayload["values"].(map[string]interface{})
	assert.Equal(t, "Bob Jones", values["contact_name"])
	assert.Equal(t, "hot", values["x_qualification"])
}

func TestCreateLead_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "prod", "secret-key")
	_, err := client.CreateLead(context.Background(), &Lead{Name: "Quote request"})
	assert.Error(t, err)
}

func TestCreateLead_EmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"id":"","status":"error","message":"duplicate key"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "prod", "secret-key")
	_, err := client.CreateLead(context.Background(), &Lead{Name: "Quote request"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestGetLead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/read/crm.lead/crm-42", r.URL.Path)
		w.Write([]byte(`{"result":[{"id":"crm-42","contact_name":"Bob Jones","x_qualification":"hot"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "prod", "secret-key")
	lead, err := client.GetLead(context.Background(), "crm-42")

	require.NoError(t, err)
	assert.Equal(t, "Bob Jones", lead.ContactName)
	assert.Equal(t, "hot", lead.Qualification)
}

func TestGetLead_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "prod", "secret-key")
	_, err := client.GetLead(context.Background(), "missing")
	assert.Error(t, err)
}
