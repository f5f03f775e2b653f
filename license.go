package payloop

import "context"

// License is a software license key issued when a product configured for
// licensing is bought.
type License struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Status string `json:"status"`
	Key    string `json:"key"`
	// Activation is how many instances are currently activated;
	// ActivationLimit is zero when unlimited.
	Activation      int              `json:"activation"`
	ActivationLimit int              `json:"activationLimit"`
	ExpiresAt       string           `json:"expiresAt"`
	CreatedAt       string           `json:"createdAt"`
	Instance        *LicenseInstance `json:"instance"`
	Mode            Mode             `json:"mode"`
}

// LicenseInstance is one device or installation a license key is activated
// on.
type LicenseInstance struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type licenseKeyParams struct {
	Key          string `json:"key"`
	InstanceName string `json:"instance_name,omitempty"`
	InstanceID   string `json:"instance_id,omitempty"`
}

// ActivateLicense activates a license key on a new instance with the given
// display name. The returned license carries the new instance, whose ID is
// needed to validate or deactivate it later.
func (c *Client) ActivateLicense(ctx context.Context, key, instanceName string) (*License, error) {
	var out License
	params := licenseKeyParams{Key: key, InstanceName: instanceName}
	if err := c.post(ctx, "/licenses/activate", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateLicense releases one activated instance of a license key.
func (c *Client) DeactivateLicense(ctx context.Context, key, instanceID string) (*License, error) {
	var out License
	params := licenseKeyParams{Key: key, InstanceID: instanceID}
	if err := c.post(ctx, "/licenses/deactivate", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateLicense checks that a license key is active for the given
// instance.
func (c *Client) ValidateLicense(ctx context.Context, key, instanceID string) (*License, error) {
	var out License
	params := licenseKeyParams{Key: key, InstanceID: instanceID}
	if err := c.post(ctx, "/licenses/validate", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
