package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
)

// maxErrorBody bounds how much of an upstream error body we carry through.
const maxErrorBody = 4 << 10

// HTTPLicenseClient talks to the License service. It also serves the sale
// probe, which lives on the same service.
//
// No retries here: a blind retry of SetStatus would be safe (idempotent) but
// a retry of the read-then-decide sequence is not, so retry policy belongs
// to the caller's reconciliation path, not this adapter.
type HTTPLicenseClient struct {
	base   string
	client *http.Client
}

func NewHTTPLicenseClient(base string, timeout time.Duration) *HTTPLicenseClient {
	return &HTTPLicenseClient{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// licensePayload is the License service's wire format.
type licensePayload struct {
	License struct {
		ID     string          `json:"id"`
		Price  decimal.Decimal `json:"price"`
		Status string          `json:"status"`
	} `json:"license"`
}

func (c *HTTPLicenseClient) Fetch(ctx context.Context, licenseID id.LicenseID, token string) (License, error) {
	endpoint := fmt.Sprintf("%s/api/license/%s", c.base, url.PathEscape(licenseID.String()))
	body, err := c.do(ctx, http.MethodGet, endpoint, token)
	if err != nil {
		return License{}, err
	}

	var payload licensePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return License{}, dErrors.Wrap(err, dErrors.CodeUpstream, "malformed license response")
	}

	license := License{
		ID:     id.LicenseID(payload.License.ID),
		Price:  payload.License.Price,
		Status: LicenseStatus(payload.License.Status),
	}
	if license.ID == "" || !license.Status.IsValid() || !license.Price.IsPositive() {
		return License{}, dErrors.New(dErrors.CodeUpstream, "malformed license response")
	}
	return license, nil
}

func (c *HTTPLicenseClient) SetStatus(ctx context.Context, licenseID id.LicenseID, status LicenseStatus, token string) error {
	var method, endpoint string
	switch status {
	case LicenseOnCredit:
		method = http.MethodPut
		endpoint = fmt.Sprintf("%s/api/license/credit/%s", c.base, url.PathEscape(licenseID.String()))
	case LicenseAvailable:
		method = http.MethodPost
		endpoint = fmt.Sprintf("%s/api/license/avail/%s", c.base, url.PathEscape(licenseID.String()))
	default:
		return dErrors.Newf(dErrors.CodeBadRequest, "cannot set license status to %q", status)
	}

	_, err := c.do(ctx, method, endpoint, token)
	return err
}

func (c *HTTPLicenseClient) HasSaleFor(ctx context.Context, licenseID id.LicenseID, token string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/license_sale/license/%s", c.base, url.PathEscape(licenseID.String()))

	resp, err := c.request(ctx, http.MethodGet, endpoint, token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, upstreamError(resp)
	}
}

// do performs a request and returns the body, mapping any non-2xx response
// to an upstream error carrying the remote status and body verbatim.
func (c *HTTPLicenseClient) do(ctx context.Context, method, endpoint, token string) ([]byte, error) {
	resp, err := c.request(ctx, method, endpoint, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "read license service response")
	}
	return body, nil
}

func (c *HTTPLicenseClient) request(ctx context.Context, method, endpoint, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build license service request")
	}
	authorize(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		// Timeouts and connection failures rank with non-2xx responses.
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "license service unreachable")
	}
	return resp, nil
}

// HTTPUserClient talks to the User service.
type HTTPUserClient struct {
	base   string
	client *http.Client
}

func NewHTTPUserClient(base string, timeout time.Duration) *HTTPUserClient {
	return &HTTPUserClient{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPUserClient) Exists(ctx context.Context, userID id.UserID, token string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/user/%s", c.base, url.PathEscape(userID.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "build user service request")
	}
	authorize(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeUpstream, "user service unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, upstreamError(resp)
	}
}

func authorize(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func upstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return dErrors.NewUpstream(resp.StatusCode, strings.TrimSpace(string(body)))
}
