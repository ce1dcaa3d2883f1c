package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mh-apps/aora-client/internal/config"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

const (
	headerProject = "X-Project"
	headerMode    = "X-Platform"
	headerSession = "X-Session"
)

type restBackendAdapter struct {
	client *resty.Client

	endpoint  string
	projectID string
	platform  string

	databaseID string
	bucketID   string

	mu      sync.RWMutex
	session string

	logger *logger.Logger
}

// NewRESTBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// cfg.Endpoint and configures the underlying HTTP client with the resolved
// base URL, the project/platform identification headers, and the request
// timeout.
//
// Returns an error if cfg.Endpoint is empty or cannot be parsed as a valid
// URL.
func NewRESTBackendAdapter(cfg config.Backend, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid backend endpoint: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader(headerProject, cfg.ProjectID).
		SetHeader(headerMode, cfg.Platform)

	return &restBackendAdapter{
		client:     cli,
		endpoint:   baseURL,
		projectID:  cfg.ProjectID,
		platform:   cfg.Platform,
		databaseID: cfg.DatabaseID,
		bucketID:   cfg.StorageBucketID,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [BackendAdapter]. It stores secret
// (whitespace-trimmed) for use in the session header of all subsequent
// authenticated requests.
func (a *restBackendAdapter) SetSession(secret string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = strings.TrimSpace(secret)
}

// Session implements [BackendAdapter]. It returns the session secret
// currently held by the adapter, or an empty string if none has been set.
func (a *restBackendAdapter) Session() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *restBackendAdapter) request(ctx context.Context) *resty.Request {
	req := a.client.R().SetContext(ctx)
	if secret := a.Session(); secret != "" {
		req.SetHeader(headerSession, secret)
	}
	return req
}

// CreateAccount implements [BackendAdapter]. It POSTs the credentials to
// POST /v1/account and returns the created account record. The password
// never appears in logs.
func (a *restBackendAdapter) CreateAccount(ctx context.Context, id, email, password, name string) (models.Account, error) {
	resp, err := a.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"userId":   id,
			"email":    email,
			"password": password,
			"name":     name,
		}).
		Post("/v1/account")
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.Account{}, fmt.Errorf("decode create account response: %w", err)
	}

	return account, nil
}

// GetAccount implements [BackendAdapter]. It GETs /v1/account using the
// stored session secret and returns the account behind it.
func (a *restBackendAdapter) GetAccount(ctx context.Context) (models.Account, error) {
	resp, err := a.request(ctx).Get("/v1/account")
	if err != nil {
		return models.Account{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.Account{}, fmt.Errorf("decode get account response: %w", err)
	}

	return account, nil
}

// CreateEmailSession implements [BackendAdapter]. It POSTs the credentials
// to POST /v1/account/sessions/email. On success the session secret is
// stored via SetSession; missing expiry or account fields are backfilled
// from the secret's claims when the secret is a JWT.
func (a *restBackendAdapter) CreateEmailSession(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/v1/account/sessions/email")
	if err != nil {
		return models.Session{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode create session response: %w", err)
	}

	fillSessionFromSecret(&session)

	a.SetSession(session.Secret)
	return session, nil
}

// DeleteSession implements [BackendAdapter]. It DELETEs
// /v1/account/sessions/{id} and clears the stored secret on success, so
// later GetAccount calls fail with [ErrUnauthorized] instead of reusing
// stale credentials.
func (a *restBackendAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		sessionID = "current"
	}

	resp, err := a.request(ctx).Delete("/v1/account/sessions/" + url.PathEscape(sessionID))
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	a.SetSession("")
	return nil
}

// CreateDocument implements [BackendAdapter]. It POSTs the document payload
// to the collection endpoint of the configured database.
func (a *restBackendAdapter) CreateDocument(ctx context.Context, collectionID, documentID string, data map[string]any) (models.Document, error) {
	resp, err := a.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"documentId": documentID, "data": data}).
		Post(a.collectionPath(collectionID))
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode create document response: %w", err)
	}

	return doc, nil
}

type documentList struct {
	Total     int               `json:"total"`
	Documents []models.Document `json:"documents"`
}

// ListDocuments implements [BackendAdapter]. Predicates are encoded as the
// platform's JSON query strings and sent as repeated "queries[]" URL
// parameters. Documents come back in backend order.
func (a *restBackendAdapter) ListDocuments(ctx context.Context, collectionID string, queries []Query) ([]models.Document, error) {
	params := url.Values{}
	for _, q := range encodeQueries(queries) {
		params.Add("queries[]", q)
	}

	resp, err := a.request(ctx).
		SetQueryParamsFromValues(params).
		Get(a.collectionPath(collectionID))
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list documentList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list documents response: %w", err)
	}

	return list.Documents, nil
}

// CreateFile implements [BackendAdapter]. The asset payload is streamed as
// a multipart upload into the configured bucket.
func (a *restBackendAdapter) CreateFile(ctx context.Context, fileID string, asset models.Asset) (models.File, error) {
	payload, err := asset.Open()
	if err != nil {
		return models.File{}, fmt.Errorf("open asset %q: %w", asset.Name, err)
	}
	defer payload.Close()

	resp, err := a.request(ctx).
		SetFileReader("file", asset.Name, payload).
		SetFormData(map[string]string{"fileId": fileID}).
		Post(fmt.Sprintf("/v1/storage/buckets/%s/files", a.bucketID))
	if err != nil {
		return models.File{}, fmt.Errorf("create file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.File{}, err
	}

	var file models.File
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.File{}, fmt.Errorf("decode create file response: %w", err)
	}

	return file, nil
}

// FileViewURL implements [BackendAdapter]. The URL embeds the project ID so
// it stays retrievable outside an authenticated client.
func (a *restBackendAdapter) FileViewURL(fileID string) string {
	return fmt.Sprintf("%s/v1/storage/buckets/%s/files/%s/view?project=%s",
		a.endpoint, a.bucketID, url.PathEscape(fileID), url.QueryEscape(a.projectID))
}

// FilePreviewURL implements [BackendAdapter].
func (a *restBackendAdapter) FilePreviewURL(fileID string, width, height int, gravity string, quality int) string {
	params := url.Values{
		"project": []string{a.projectID},
		"width":   []string{strconv.Itoa(width)},
		"height":  []string{strconv.Itoa(height)},
		"gravity": []string{gravity},
		"quality": []string{strconv.Itoa(quality)},
	}
	return fmt.Sprintf("%s/v1/storage/buckets/%s/files/%s/preview?%s",
		a.endpoint, a.bucketID, url.PathEscape(fileID), params.Encode())
}

// AvatarInitialsURL implements [BackendAdapter].
func (a *restBackendAdapter) AvatarInitialsURL(name string) string {
	params := url.Values{
		"project": []string{a.projectID},
		"name":    []string{name},
	}
	return fmt.Sprintf("%s/v1/avatars/initials?%s", a.endpoint, params.Encode())
}

func (a *restBackendAdapter) collectionPath(collectionID string) string {
	return fmt.Sprintf("/v1/databases/%s/collections/%s/documents", a.databaseID, collectionID)
}

// fillSessionFromSecret backfills AccountID and ExpiresAt from the secret's
// registered claims when the backend issues JWT-form secrets and omits the
// fields from the response body. Parse failures leave the session untouched;
// the secret stays opaque in that case.
func fillSessionFromSecret(session *models.Session) {
	if session.Secret == "" || (session.AccountID != "" && !session.ExpiresAt.IsZero()) {
		return
	}

	token, _, err := jwt.NewParser().ParseUnverified(session.Secret, jwt.MapClaims{})
	if err != nil {
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	if session.AccountID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			session.AccountID = sub
		}
	}
	if session.ExpiresAt.IsZero() {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			session.ExpiresAt = exp.Time
		}
	}
}
