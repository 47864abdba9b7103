package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"

	"voice-timer-skill/pkg/metrics"
	"voice-timer-skill/pkg/tracing"
)

const timersPath = "/v1/alerts/timers"

// Client is the HTTP wrapper for the timer management REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL that authenticates every call with
// accessToken. base may be nil.
func NewClient(baseURL, accessToken string, base *http.Client) *Client {
	if base == nil {
		base = &http.Client{}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: src, Base: base.Transport},
			Timeout:   base.Timeout,
		},
	}
}

// ListTimers fetches one page of timers via GET /v1/alerts/timers. An empty
// nextToken asks for the first page.
func (c *Client) ListTimers(ctx context.Context, nextToken string) (*TimersList, error) {
	path := timersPath
	if nextToken != "" {
		path += "?" + url.Values{"nextToken": {nextToken}}.Encode()
	}
	var out TimersList
	if err := c.do(ctx, opList, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTimer creates a timer via POST /v1/alerts/timers.
func (c *Client) CreateTimer(ctx context.Context, req CreateTimerRequest) (*TimerResponse, error) {
	var out TimerResponse
	if err := c.do(ctx, opCreate, http.MethodPost, timersPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTimer fetches a single timer by its ID.
func (c *Client) GetTimer(ctx context.Context, id string) (*TimerResponse, error) {
	var out TimerResponse
	if err := c.do(ctx, opGet, http.MethodGet, timerPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PauseTimer pauses a running timer.
func (c *Client) PauseTimer(ctx context.Context, id string) error {
	return c.do(ctx, opPause, http.MethodPost, timerPath(id)+"/pause", nil, nil)
}

// ResumeTimer resumes a paused timer.
func (c *Client) ResumeTimer(ctx context.Context, id string) error {
	return c.do(ctx, opResume, http.MethodPost, timerPath(id)+"/resume", nil, nil)
}

// DeleteTimer deletes a single timer.
func (c *Client) DeleteTimer(ctx context.Context, id string) error {
	return c.do(ctx, opDelete, http.MethodDelete, timerPath(id), nil, nil)
}

// DeleteTimers deletes every timer of the skill.
func (c *Client) DeleteTimers(ctx context.Context) error {
	return c.do(ctx, opDeleteAll, http.MethodDelete, timersPath, nil, nil)
}

// timerPath escapes id, which comes back from the client's session state.
func timerPath(id string) string {
	return timersPath + "/" + url.PathEscape(id)
}

// do sends one request. A non-2xx status becomes *APIError.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	status := "transport_error"

	ctx, span := tracing.StartSpan(ctx, "timerapi."+op)
	span.SetAttributes(attribute.String("http.method", method), attribute.String("http.route", path))
	defer func() {
		metrics.RecordTimerAPICall(op, status, time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var body io.Reader
	if in != nil {
		raw, mErr := json.Marshal(in)
		if mErr != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, mErr)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call timer %s API: %w", op, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(op, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode timer %s response: %w", op, err)
	}
	return nil
}

func newAPIError(op string, resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	apiErr := &APIError{Operation: op, StatusCode: resp.StatusCode}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
