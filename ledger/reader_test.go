package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"coopchain/agreement"
	"coopchain/config"
	"coopchain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testModuleAddr = "0xa2873261bb7f21fd004fbe1fa90807919206701493291ce7cf38f3e5ce85cbc2"
	testFarmer     = "0xFa11"
)

func testReader(nodeURL string) *Reader {
	return NewReader(config.ClientConfig{
		ModuleAddress: testModuleAddr,
		NodeURL:       nodeURL,
	})
}

func TestFetchAgreementParsesResource(t *testing.T) {
	wantPath := "/accounts/" + testFarmer + "/resource/" + url.PathEscape(agreement.ResourceType(testModuleAddr))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {
			"minimum_price": "250000000",
			"quantity_tons": "4",
			"total_value": "1000000000",
			"is_fulfilled": false,
			"buyer_address": "0xB"
		}}`))
	}))
	defer srv.Close()

	a, err := testReader(srv.URL).FetchAgreement(context.Background(), testFarmer)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, uint64(250_000_000), a.MinimumPrice.Uint64())
	assert.Equal(t, uint64(1_000_000_000), a.TotalValue.Uint64())
	assert.False(t, a.IsFulfilled)
	assert.Equal(t, "0xB", a.BuyerAddress)
}

func TestFetchAgreementNotFoundIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code":"resource_not_found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	a, err := testReader(srv.URL).FetchAgreement(context.Background(), testFarmer)
	require.NoError(t, err, "404 is a valid absent state, not an error")
	assert.Nil(t, a)
}

func TestFetchAgreementSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal: out of gas", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testReader(srv.URL).FetchAgreement(context.Background(), testFarmer)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeLedgerRead, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "out of gas")
}

func TestFetchAgreementUnreachableNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testReader(srv.URL).FetchAgreement(context.Background(), testFarmer)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeLedgerRead, errors.CodeOf(err))
}
