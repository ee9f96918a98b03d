package roadwatchsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListAccounts(ctx context.Context) ([]AccountInfo, error) {
	var out []AccountInfo
	err := c.get(ctx, "/api/utilisateurs", &out)
	return out, err
}

func (c *Client) LockedAccounts(ctx context.Context) ([]AccountInfo, error) {
	var out []AccountInfo
	err := c.get(ctx, "/api/utilisateurs/bloques", &out)
	return out, err
}

// UnlockAccount resets the failed-attempt counter of id and clears its lock.
func (c *Client) UnlockAccount(ctx context.Context, id string) (AccountInfo, error) {
	var out AccountInfo
	err := c.do(ctx, http.MethodPut, "/api/utilisateurs/"+url.PathEscape(id)+"/reinitialiser-tentatives", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) UpdateAccount(ctx context.Context, id string, req AccountUpdateRequest) (AccountInfo, error) {
	var out AccountInfo
	err := c.do(ctx, http.MethodPut, "/api/utilisateurs/"+url.PathEscape(id), req, &out, http.StatusOK)
	return out, err
}

func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var out ExistsResponse
	err := c.get(ctx, "/api/utilisateurs/exists/email/"+url.PathEscape(email), &out)
	return out.Exists, err
}

func (c *Client) AccountByUsername(ctx context.Context, username string) (AccountInfo, error) {
	var out AccountInfo
	err := c.get(ctx, "/api/utilisateurs/nom/"+url.PathEscape(username), &out)
	return out, err
}

func (c *Client) AccountByEmail(ctx context.Context, email string) (AccountInfo, error) {
	var out AccountInfo
	err := c.get(ctx, "/api/utilisateurs/email/"+url.PathEscape(email), &out)
	return out, err
}

func (c *Client) RoleByName(ctx context.Context, name string) (RoleInfo, error) {
	var out RoleInfo
	err := c.get(ctx, "/api/roles/nom/"+url.PathEscape(name), &out)
	return out, err
}

func (c *Client) ListRoles(ctx context.Context) ([]RoleInfo, error) {
	var out []RoleInfo
	err := c.get(ctx, "/api/roles", &out)
	return out, err
}

func (c *Client) ListAuthParameters(ctx context.Context) ([]AuthParameterInfo, error) {
	var out []AuthParameterInfo
	err := c.get(ctx, "/api/parametres", &out)
	return out, err
}

func (c *Client) SetAuthParameter(ctx context.Context, key string, req AuthParameterRequest) (AuthParameterInfo, error) {
	var out AuthParameterInfo
	err := c.do(ctx, http.MethodPut, "/api/parametres/"+url.PathEscape(key), req, &out, http.StatusOK)
	return out, err
}

func (c *Client) CreateCompany(ctx context.Context, name string) (CompanyInfo, error) {
	var out CompanyInfo
	err := c.do(ctx, http.MethodPost, "/api/entreprises", CompanyRequest{Name: name}, &out, http.StatusCreated)
	return out, err
}

func (c *Client) CreatePlace(ctx context.Context, req PlaceRequest) (PlaceInfo, error) {
	var out PlaceInfo
	err := c.do(ctx, http.MethodPost, "/api/lieux", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) PlacesByCity(ctx context.Context, city string) ([]PlaceInfo, error) {
	var out []PlaceInfo
	err := c.get(ctx, "/api/lieux/ville/"+url.PathEscape(city), &out)
	return out, err
}
