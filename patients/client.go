package patients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ClientConfig struct {
	ServerBaseUrl string        `envconfig:"PUMP_PATIENT_SERVICE_URL" default:"http://patient-service:8080"`
	Timeout       time.Duration `envconfig:"PUMP_CLIENT_TIMEOUT" default:"10s"`
}

func NewClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewClient(config *ClientConfig) (Client, error) {
	return &client{
		baseUrl: config.ServerBaseUrl,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

type client struct {
	baseUrl    string
	httpClient *http.Client
}

var _ Client = &client{}

func (c *client) GetPatient(ctx context.Context, id uint64) (*Patient, error) {
	return c.getPatient(ctx, fmt.Sprintf("%s/api/patients/%d", c.baseUrl, id))
}

func (c *client) GetPatientByDeviceId(ctx context.Context, deviceId uint64) (*Patient, error) {
	return c.getPatient(ctx, fmt.Sprintf("%s/api/patients/device/%d", c.baseUrl, deviceId))
}

func (c *client) getPatient(ctx context.Context, url string) (*Patient, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("patient service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response %v from patient service", res.StatusCode)
	}

	patient := &Patient{}
	if err := json.NewDecoder(res.Body).Decode(patient); err != nil {
		return nil, fmt.Errorf("unable to decode patient service response: %w", err)
	}
	return patient, nil
}
