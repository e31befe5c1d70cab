package client

import (
	"context"
	"fmt"
)

// ProClient is the extended-only operation set. Each method checks the gate
// before any request is built.
type ProClient struct {
	resources *Resources
	gate      Gate
}

func newProClient(resources *Resources, gate Gate) *ProClient {
	return &ProClient{resources: resources, gate: gate}
}

// License returns the installed license information.
func (p *ProClient) License(ctx context.Context) (map[string]any, error) {
	if err := p.gate.Require(FeatureLicensing); err != nil {
		return nil, err
	}
	resp, err := p.resources.Get(ctx, ResourceLicense, "")
	if err != nil {
		return nil, fmt.Errorf("get license info: %w", err)
	}
	var info map[string]any
	if err := decode(resp, &info); err != nil {
		return nil, fmt.Errorf("get license info: %w", err)
	}
	return info, nil
}

// InstallLicense uploads a license file's bytes.
func (p *ProClient) InstallLicense(ctx context.Context, license []byte) error {
	if err := p.gate.Require(FeatureLicensing); err != nil {
		return err
	}
	if len(license) == 0 {
		return fmt.Errorf("install license: license is empty")
	}
	headers := map[string]string{HeaderContentType: ContentTypeOctetStream}
	if _, err := p.resources.Exchange(ctx, ResourceLicenseUpload, ActionCreate, "", license, headers); err != nil {
		return fmt.Errorf("install license: %w", err)
	}
	return nil
}

// SmartProxySettings returns the smart proxy configuration.
func (p *ProClient) SmartProxySettings(ctx context.Context) (*SmartProxySettings, error) {
	if err := p.gate.Require(FeatureSmartProxy); err != nil {
		return nil, err
	}
	resp, err := p.resources.Get(ctx, ResourceSmartProxy, "")
	if err != nil {
		return nil, fmt.Errorf("get smart proxy settings: %w", err)
	}
	var envelope dataEnvelope[SmartProxySettings]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get smart proxy settings: %w", err)
	}
	return &envelope.Data, nil
}

// EnableSmartProxy turns smart proxy on. Empty host and zero port leave the
// server's defaults in place.
func (p *ProClient) EnableSmartProxy(ctx context.Context, host string, port int) error {
	return p.setSmartProxy(ctx, SmartProxySettings{Enabled: true, Host: host, Port: port})
}

// DisableSmartProxy turns smart proxy off.
func (p *ProClient) DisableSmartProxy(ctx context.Context) error {
	return p.setSmartProxy(ctx, SmartProxySettings{Enabled: false})
}

func (p *ProClient) setSmartProxy(ctx context.Context, settings SmartProxySettings) error {
	if err := p.gate.Require(FeatureSmartProxy); err != nil {
		return err
	}
	if settings.Port < 0 || settings.Port > 65535 {
		return fmt.Errorf("update smart proxy settings: port %d out of range", settings.Port)
	}
	if _, err := p.resources.Update(ctx, ResourceSmartProxy, "", dataEnvelope[SmartProxySettings]{Data: settings}); err != nil {
		return fmt.Errorf("update smart proxy settings: %w", err)
	}
	return nil
}

// TrustedKeys lists the smart proxy trusted keys.
func (p *ProClient) TrustedKeys(ctx context.Context) ([]TrustedKey, error) {
	if err := p.gate.Require(FeatureTrustedKeys); err != nil {
		return nil, err
	}
	resp, err := p.resources.Get(ctx, ResourceTrustedKey, "")
	if err != nil {
		return nil, fmt.Errorf("get trusted keys: %w", err)
	}
	var envelope dataEnvelope[[]TrustedKey]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get trusted keys: %w", err)
	}
	return envelope.Data, nil
}

// AddTrustedKey adds a PEM certificate under description.
func (p *ProClient) AddTrustedKey(ctx context.Context, certificate, description string) error {
	if err := p.gate.Require(FeatureTrustedKeys); err != nil {
		return err
	}
	if certificate == "" || description == "" {
		return fmt.Errorf("add trusted key: certificate and description are required")
	}
	body := dataEnvelope[map[string]string]{Data: map[string]string{
		"description": description,
		"certificate": certificate,
	}}
	if _, err := p.resources.Create(ctx, ResourceTrustedKey, body); err != nil {
		return fmt.Errorf("add trusted key: %w", err)
	}
	return nil
}

// DeleteTrustedKey removes the trusted key with id.
func (p *ProClient) DeleteTrustedKey(ctx context.Context, id string) error {
	if err := p.gate.Require(FeatureTrustedKeys); err != nil {
		return err
	}
	if err := p.resources.Delete(ctx, ResourceTrustedKey, id); err != nil {
		return fmt.Errorf("delete trusted key '%s': %w", id, err)
	}
	return nil
}

// PubSub returns the publish/subscribe state of repositoryID.
func (p *ProClient) PubSub(ctx context.Context, repositoryID string) (*PubSub, error) {
	if err := p.gate.Require(FeaturePubSub); err != nil {
		return nil, err
	}
	resp, err := p.resources.Get(ctx, ResourcePubSub, repositoryID)
	if err != nil {
		return nil, fmt.Errorf("get pub-sub for '%s': %w", repositoryID, err)
	}
	var envelope dataEnvelope[PubSub]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get pub-sub for '%s': %w", repositoryID, err)
	}
	return &envelope.Data, nil
}

// SetPubSub replaces the publish/subscribe state of a repository.
func (p *ProClient) SetPubSub(ctx context.Context, state PubSub) error {
	if err := p.gate.Require(FeaturePubSub); err != nil {
		return err
	}
	if _, err := p.resources.Update(ctx, ResourcePubSub, state.RepositoryID, dataEnvelope[PubSub]{Data: state}); err != nil {
		return fmt.Errorf("update pub-sub for '%s': %w", state.RepositoryID, err)
	}
	return nil
}
