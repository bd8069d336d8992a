package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/config"
	"moviweb-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// Lookup resolves a movie title against the external metadata service.
// The favorites service depends on this interface so tests can stub it.
type Lookup interface {
	LookupByTitle(ctx context.Context, title string) (*models.MovieInfo, error)
}

type OMDbClient struct {
	config     config.OMDbConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewOMDbClient(cfg config.OMDbConfig, logger *logrus.Logger) *OMDbClient {
	return &OMDbClient{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// leadingYear handles OMDb year ranges like "2010" or "1994-1998".
var leadingYear = regexp.MustCompile(`^\d{4}`)

// LookupByTitle issues a single by-title request. There is no retry: a
// transport failure surfaces as an upstream error and the caller decides
// whether to fall back to manually entered fields.
func (c *OMDbClient) LookupByTitle(ctx context.Context, title string) (*models.MovieInfo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "movie title is required")
	}

	reqURL := fmt.Sprintf("%s/?apikey=%s&t=%s",
		strings.TrimSuffix(c.config.BaseURL, "/"),
		url.QueryEscape(c.config.APIKey),
		url.QueryEscape(title),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("title", title).Error("OMDb request failed")
		return nil, apperror.Upstream("movie information service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"title":  title,
			"status": resp.StatusCode,
		}).Error("OMDb returned non-OK status")
		return nil, apperror.Upstream(
			fmt.Sprintf("movie information service returned status %d", resp.StatusCode), nil)
	}

	var payload models.OMDbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.Upstream("movie information service returned an unreadable response", err)
	}

	// OMDb signals "not found" in-band with Response == "False".
	if payload.Response != "True" {
		msg := payload.Error
		if msg == "" {
			msg = "movie not found"
		}
		c.logger.WithField("title", title).Debug("OMDb reported no match")
		return nil, apperror.NotFoundMsg(msg)
	}

	return normalizeOMDb(&payload), nil
}

// normalizeOMDb maps the raw payload into entity fields. Missing or "N/A"
// values default to zero rather than failing the whole lookup.
func normalizeOMDb(payload *models.OMDbResponse) *models.MovieInfo {
	info := &models.MovieInfo{
		ImdbID:    payload.ImdbID,
		Name:      payload.Title,
		Director:  cleanNA(payload.Director),
		Genre:     cleanNA(payload.Genre),
		PosterURL: cleanNA(payload.Poster),
	}

	if match := leadingYear.FindString(payload.Year); match != "" {
		info.Year, _ = strconv.Atoi(match)
	}
	if rating := cleanNA(payload.ImdbRating); rating != "" {
		if parsed, err := strconv.ParseFloat(rating, 64); err == nil {
			info.Rating = parsed
		}
	}
	return info
}

func cleanNA(value string) string {
	if value == "N/A" {
		return ""
	}
	return value
}
