// ABOUTME: Deployment publisher pushing finished documents to the hosting provider
// ABOUTME: Returns nil on any failure, never an error; absence of hosting is a supported mode

package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
)

const sitesEndpoint = "https://api.netlify.com/api/v1/sites"

// siteResponse mirrors the provider's site provisioning payload
type siteResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	SSLURL   string `json:"ssl_url"`
	AdminURL string `json:"admin_url"`
}

// deployResponse mirrors the provider's deploy payload
type deployResponse struct {
	ID string `json:"id"`
}

// DeployService publishes generated pages to the hosting provider
type DeployService struct {
	deps   interfaces.Dependencies
	apiKey string
}

// NewDeployService creates a new deploy service. An empty apiKey disables
// deployment entirely; Publish then returns nil without any network call.
func NewDeployService(deps interfaces.Dependencies, apiKey string) *DeployService {
	return &DeployService{
		deps:   deps,
		apiKey: apiKey,
	}
}

// Publish provisions a hosting target named name and pushes the document to
// it. Any failure returns nil; a partially provisioned site is not cleaned
// up or retried. A nil result is a supported outcome for the pipeline.
func (s *DeployService) Publish(ctx context.Context, html string, name string) *domain.DeploymentResult {
	if s.apiKey == "" || s.deps.HTTPClient == nil {
		return nil
	}

	site, ok := s.provisionSite(ctx, name)
	if !ok {
		return nil
	}

	deployID, ok := s.pushContent(ctx, site.ID, html)
	if !ok {
		return nil
	}

	liveURL := site.SSLURL
	if liveURL == "" {
		liveURL = site.URL
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("website deployed", map[string]interface{}{
			"site_id":   site.ID,
			"deploy_id": deployID,
			"live_url":  liveURL,
		})
	}

	return &domain.DeploymentResult{
		LiveURL:  liveURL,
		DeployID: deployID,
		SiteID:   site.ID,
		AdminURL: site.AdminURL,
	}
}

// provisionSite creates the hosting target
func (s *DeployService) provisionSite(ctx context.Context, name string) (*siteResponse, bool) {
	payload, _ := json.Marshal(map[string]string{"name": name})

	resp, err := s.deps.HTTPClient.PostWithHeaders(ctx, sitesEndpoint, bytes.NewReader(payload), s.authHeaders())
	if err != nil {
		s.logDegraded("site provisioning request failed", err.Error())
		return nil, false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		s.logDegraded("site provisioning returned non-success status", fmt.Sprintf("status %d", resp.StatusCode()))
		return nil, false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logDegraded("site provisioning body read failed", err.Error())
		return nil, false
	}

	var site siteResponse
	if err := json.Unmarshal(body, &site); err != nil || site.ID == "" {
		s.logDegraded("site provisioning payload malformed", "missing site id")
		return nil, false
	}

	return &site, true
}

// pushContent deploys the document as the site's content in one call
func (s *DeployService) pushContent(ctx context.Context, siteID, html string) (string, bool) {
	payload, err := json.Marshal(map[string]interface{}{
		"files": map[string]string{"/index.html": html},
	})
	if err != nil {
		return "", false
	}

	deployURL := fmt.Sprintf("%s/%s/deploys", sitesEndpoint, siteID)
	resp, err := s.deps.HTTPClient.PostWithHeaders(ctx, deployURL, bytes.NewReader(payload), s.authHeaders())
	if err != nil {
		s.logDegraded("deploy request failed", err.Error())
		return "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		s.logDegraded("deploy returned non-success status", fmt.Sprintf("status %d", resp.StatusCode()))
		return "", false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logDegraded("deploy body read failed", err.Error())
		return "", false
	}

	var deployed deployResponse
	if err := json.Unmarshal(body, &deployed); err != nil || deployed.ID == "" {
		s.logDegraded("deploy payload malformed", "missing deploy id")
		return "", false
	}

	return deployed.ID, true
}

func (s *DeployService) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.apiKey}
}

func (s *DeployService) logDegraded(msg, reason string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"reason": reason,
	})
}
