package technician

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

// HTTPDirectory talks to the technician service over its REST API:
//
//	GET /api/technician/:id
//	PUT /api/technician/:id/update {availabilityStatus, orderId}
type HTTPDirectory struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.ITechnicianDirectory = (*HTTPDirectory)(nil)

func NewHTTPDirectory(baseURL string, timeout time.Duration) *HTTPDirectory {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPDirectory{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type technicianEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID                  string `json:"_id"`
		FirstName           string `json:"firstName"`
		LastName            string `json:"lastName"`
		TechnicianType      string `json:"technicianType"`
		AvailabilityStatus  string `json:"availabilityStatus"`
		OrganizationDetails struct {
			OrganizationName string `json:"organizationName"`
		} `json:"organizationDetails"`
	} `json:"data"`
}

func (d *HTTPDirectory) GetTechnician(ctx context.Context, id string) (entities.Technician, error) {
	endpoint := fmt.Sprintf("%s/api/technician/%s", d.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Technician{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return entities.Technician{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return entities.Technician{}, interfaces.ErrTechnicianNotFound
	}
	if resp.StatusCode >= 300 {
		return entities.Technician{}, fmt.Errorf("technician service status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env technicianEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return entities.Technician{}, fmt.Errorf("parse response: %w", err)
	}
	techID := env.Data.ID
	if techID == "" {
		techID = id
	}
	return entities.Technician{
		ID:                 techID,
		FirstName:          env.Data.FirstName,
		LastName:           env.Data.LastName,
		TechnicianType:     env.Data.TechnicianType,
		OrganizationName:   env.Data.OrganizationDetails.OrganizationName,
		AvailabilityStatus: entities.AvailabilityStatus(env.Data.AvailabilityStatus),
	}, nil
}

func (d *HTTPDirectory) SetAvailability(ctx context.Context, id string, status entities.AvailabilityStatus, orderID string) error {
	payload, err := json.Marshal(map[string]string{
		"availabilityStatus": string(status),
		"orderId":            orderID,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/api/technician/%s/update", d.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return interfaces.ErrTechnicianNotFound
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("technician service status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
