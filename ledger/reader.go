package ledger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"coopchain/agreement"
	"coopchain/config"
	"coopchain/errors"
	"coopchain/jsonx"
	"coopchain/logx"
)

// Reader fetches and deserializes the on-chain PriceAgreement resource from
// the fullnode REST API.
type Reader struct {
	nodeURL    string
	moduleAddr string
	httpClient *http.Client
}

func NewReader(cfg config.ClientConfig) *Reader {
	return &Reader{
		nodeURL:    cfg.NodeURL,
		moduleAddr: cfg.ModuleAddress,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type resourceEnvelope struct {
	Data agreement.PriceAgreement `json:"data"`
}

// FetchAgreement reads the PriceAgreement resource under farmerAddress.
// A 404 from the node means the farmer has no agreement yet and maps to
// (nil, nil); every other non-2xx status surfaces as a ledger_read_error
// carrying the response body.
func (r *Reader) FetchAgreement(ctx context.Context, farmerAddress string) (*agreement.PriceAgreement, error) {
	typeTag := agreement.ResourceType(r.moduleAddr)
	endpoint := fmt.Sprintf("%s/accounts/%s/resource/%s", r.nodeURL, farmerAddress, url.PathEscape(typeTag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewClientError(errors.ErrCodeLedgerRead, err.Error())
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		logx.Error("LEDGER", "Resource fetch failed: ", err)
		return nil, errors.NewClientError(errors.ErrCodeLedgerRead, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		logx.Warn("LEDGER", fmt.Sprintf("Resource fetch returned %d: %s", resp.StatusCode, string(body)))
		return nil, errors.NewClientError(errors.ErrCodeLedgerRead, string(body))
	}

	var envelope resourceEnvelope
	if err := jsonx.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.NewClientError(errors.ErrCodeLedgerRead, err.Error())
	}
	return &envelope.Data, nil
}
