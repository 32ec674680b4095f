package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stagepass/internal/pkg/config"
	"stagepass/internal/pkg/errs"
	"stagepass/internal/usecase/commands"
)

const (
	tokenURL   = "https://kauth.kakao.com/oauth/token"
	profileURL = "https://kapi.kakao.com/v2/user/me"
)

// Client exchanges an OAuth authorization code against Kakao's token and
// profile endpoints.
type Client struct {
	cfg        config.KakaoConfig
	httpClient *http.Client
}

func NewClient(cfg config.KakaoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("token endpoint returned %d", resp.StatusCode))
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	if body.AccessToken == "" {
		return "", errs.New("token response missing access token")
	}
	return body.AccessToken, nil
}

func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*commands.KakaoProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build profile request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "profile request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("profile endpoint returned %d", resp.StatusCode))
	}

	var body struct {
		ID           int64 `json:"id"`
		KakaoAccount struct {
			Email   string `json:"email"`
			Profile struct {
				Nickname        string `json:"nickname"`
				ProfileImageURL string `json:"profile_image_url"`
			} `json:"profile"`
		} `json:"kakao_account"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode profile response")
	}

	profile := &commands.KakaoProfile{
		ID:       body.ID,
		Email:    body.KakaoAccount.Email,
		Nickname: body.KakaoAccount.Profile.Nickname,
	}
	if img := body.KakaoAccount.Profile.ProfileImageURL; img != "" {
		profile.ProfileImage = &img
	}
	return profile, nil
}
