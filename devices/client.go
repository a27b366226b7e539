package devices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ClientConfig struct {
	ServerBaseUrl string        `envconfig:"PUMP_DEVICE_SERVICE_URL" default:"http://device-service:8080"`
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

func (c *client) GetDevice(ctx context.Context, id uint64) (*Device, error) {
	device := &Device{}
	url := fmt.Sprintf("%s/api/devices/%d", c.baseUrl, id)
	if err := c.getJSON(ctx, url, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (c *client) GetDeviceByPatientId(ctx context.Context, patientId uint64) (*Device, error) {
	// The directory returns every device registered to the patient,
	// most recently assigned first.
	var devices []Device
	url := fmt.Sprintf("%s/api/devices/patient/%d", c.baseUrl, patientId)
	if err := c.getJSON(ctx, url, &devices); err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrNotFound
	}
	return &devices[0], nil
}

func (c *client) getJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("device service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response %v from device service", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("unable to decode device service response: %w", err)
	}
	return nil
}
