package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/request"
)

const (
	sessionsTemplate      = "{+baseurl}/v1/sessions{?cursor,endTime,isActive,limit,startTime,userId}"
	sessionItemTemplate   = "{+baseurl}/v1/sessions/{sessionId}"
	sessionTracesTemplate = "{+baseurl}/v1/sessions/{sessionId}/traces{?cursor,limit}"
	sessionStatsTemplate  = "{+baseurl}/v1/sessions/stats{?endTime,serviceName,startTime}"
)

// SessionsRequestBuilder handles /v1/sessions.
type SessionsRequestBuilder struct {
	base request.BaseRequestBuilder
}

type SessionsGetQueryParameters struct {
	Cursor    *string    `query:"cursor,omitempty"`
	EndTime   *time.Time `query:"end_time,omitempty"`
	IsActive  *bool      `query:"is_active,omitempty"`
	Limit     *int32     `query:"limit,omitempty" validate:"omitempty,gte=1,lte=1000"`
	StartTime *time.Time `query:"start_time,omitempty"`
	UserID    *string    `query:"user_id,omitempty"`
}

func (SessionsGetQueryParameters) QueryParameterName(field string) string {
	return wireNames.Translate(field)
}

func (b *SessionsRequestBuilder) BySessionID(sessionID string) *SessionItemRequestBuilder {
	return &SessionItemRequestBuilder{base: b.base.Child(sessionItemTemplate, "sessionId", sessionID)}
}

func (b *SessionsRequestBuilder) Stats() *SessionStatsRequestBuilder {
	return &SessionStatsRequestBuilder{base: b.base.Nested(sessionStatsTemplate)}
}

// Get lists sessions.
func (b *SessionsRequestBuilder) Get(ctx context.Context, cfg *Config[SessionsGetQueryParameters]) (*models.Page[*models.SessionEntity], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewSessionEntity), listErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *SessionsRequestBuilder) ToGetRequestInformation(cfg *Config[SessionsGetQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *SessionsRequestBuilder) WithURL(rawURL string) *SessionsRequestBuilder {
	return &SessionsRequestBuilder{base: b.base.WithURL(rawURL)}
}

// SessionItemRequestBuilder handles /v1/sessions/{sessionId}.
type SessionItemRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Traces navigates to the traces recorded during the session.
func (b *SessionItemRequestBuilder) Traces() *SessionTracesRequestBuilder {
	return &SessionTracesRequestBuilder{base: b.base.Nested(sessionTracesTemplate)}
}

// Get fetches one session.
func (b *SessionItemRequestBuilder) Get(ctx context.Context, cfg *NoQuery) (*models.SessionEntity, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewSessionEntity, itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *SessionItemRequestBuilder) ToGetRequestInformation(cfg *NoQuery) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *SessionItemRequestBuilder) WithURL(rawURL string) *SessionItemRequestBuilder {
	return &SessionItemRequestBuilder{base: b.base.WithURL(rawURL)}
}

type SessionTracesRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get lists traces.
func (b *SessionTracesRequestBuilder) Get(ctx context.Context, cfg *Config[ListQueryParameters]) (*models.Page[*models.Trace], error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.PageOf(models.NewTrace), itemErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *SessionTracesRequestBuilder) ToGetRequestInformation(cfg *Config[ListQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *SessionTracesRequestBuilder) WithURL(rawURL string) *SessionTracesRequestBuilder {
	return &SessionTracesRequestBuilder{base: b.base.WithURL(rawURL)}
}

type SessionStatsRequestBuilder struct {
	base request.BaseRequestBuilder
}

// Get fetches session statistics.
func (b *SessionStatsRequestBuilder) Get(ctx context.Context, cfg *Config[TimeRangeQueryParameters]) (*models.SessionStats, error) {
	info, err := b.ToGetRequestInformation(cfg)
	if err != nil {
		return nil, err
	}
	return request.Send(ctx, b.base.Adapter, info, models.NewSessionStats, serverErrors)
}

// ToGetRequestInformation builds the GET request without sending it.
func (b *SessionStatsRequestBuilder) ToGetRequestInformation(cfg *Config[TimeRangeQueryParameters]) (*request.RequestInformation, error) {
	return request.Prepare(b.base, http.MethodGet, request.ContentTypeJSON, cfg)
}

func (b *SessionStatsRequestBuilder) WithURL(rawURL string) *SessionStatsRequestBuilder {
	return &SessionStatsRequestBuilder{base: b.base.WithURL(rawURL)}
}
