package controlplane

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pf9/region-wizard/internal/models"
)

const defaultDomainID = "default"

// ErrNoSession is wrapped by every Authenticate failure. Callers treat the
// region as unreachable for the current operation and do not retry.
var ErrNoSession = errors.New("no session")

type domain struct {
	ID string `json:"id"`
}

type authUser struct {
	Name     string `json:"name"`
	Domain   domain `json:"domain"`
	Password string `json:"password"`
}

type authRequest struct {
	Auth struct {
		Identity struct {
			Methods  []string `json:"methods"`
			Password struct {
				User authUser `json:"user"`
			} `json:"password"`
		} `json:"identity"`
		Scope struct {
			Project struct {
				Name   string `json:"name"`
				Domain domain `json:"domain"`
			} `json:"project"`
		} `json:"scope"`
	} `json:"auth"`
}

type authResponse struct {
	Token *struct {
		Project *struct {
			ID string `json:"id"`
		} `json:"project"`
	} `json:"token"`
}

func newAuthRequest(username, password, tenant string) authRequest {
	var r authRequest
	r.Auth.Identity.Methods = []string{"password"}
	r.Auth.Identity.Password.User = authUser{
		Name:     username,
		Domain:   domain{ID: defaultDomainID},
		Password: password,
	}
	r.Auth.Scope.Project.Name = tenant
	r.Auth.Scope.Project.Domain = domain{ID: defaultDomainID}
	return r
}

// Authenticate exchanges credentials for a project scoped token using the
// password grant of the region's identity service.
// POST /keystone/v3/auth/tokens?nocatalog
func (c *Client) Authenticate(ctx context.Context, regionURL, username, password, tenant string) (*models.Session, error) {
	session, err := c.authenticate(ctx, regionURL, username, password, tenant)
	if err != nil {
		zap.S().Named("controlplane").Debugw("authentication failed", "url", regionURL, "user", username, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	return session, nil
}

// AuthenticateRegion authenticates with the credentials stored in r.
func (c *Client) AuthenticateRegion(ctx context.Context, r models.Region) (*models.Session, error) {
	return c.Authenticate(ctx, r.URL, r.Username, r.Password, r.Tenant)
}

func (c *Client) authenticate(ctx context.Context, regionURL, username, password, tenant string) (*models.Session, error) {
	body, err := json.Marshal(newAuthRequest(username, password, tenant))
	if err != nil {
		return nil, err
	}

	url := endpoint(regionURL, "keystone/v3/auth/tokens?nocatalog")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed authResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse json result: %w", err)
	}
	if parsed.Token == nil || parsed.Token.Project == nil || parsed.Token.Project.ID == "" {
		return nil, fmt.Errorf("response has no project id (status %s)", resp.Status)
	}

	token := resp.Header.Get("X-Subject-Token")
	if token == "" {
		return nil, errors.New("response has no X-Subject-Token header")
	}

	return &models.Session{ProjectID: parsed.Token.Project.ID, Token: token}, nil
}
