package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/domain"
)

var (
	ErrReviewsNotConfigured = errors.New("google reviews are not configured")
	ErrReviewsUpstream      = errors.New("failed to fetch reviews")
)

const (
	reviewsCacheKey = "reviews:google"
	reviewsCacheTTL = 10 * time.Minute

	googlePlacesBaseURL = "https://maps.googleapis.com"
)

// ReviewService proxies the business's Google reviews so the public site
// never talks to the Places API (or holds the key) itself.
type ReviewService interface {
	GetGoogleReviews(ctx context.Context) (*domain.ReviewSummary, error)
}

type reviewService struct {
	cfg     *config.Config
	redis   *redis.Client
	client  *http.Client
	baseURL string
}

func NewReviewService(cfg *config.Config, redis *redis.Client) ReviewService {
	return &reviewService{
		cfg:     cfg,
		redis:   redis,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: googlePlacesBaseURL,
	}
}

type placeReview struct {
	AuthorName              string `json:"author_name"`
	Time                    int64  `json:"time"`
	Text                    string `json:"text"`
	Rating                  int    `json:"rating"`
	ProfilePhotoURL         string `json:"profile_photo_url"`
	RelativeTimeDescription string `json:"relative_time_description"`
}

type placeDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string        `json:"name"`
		Rating           float64       `json:"rating"`
		UserRatingsTotal int           `json:"user_ratings_total"`
		Reviews          []placeReview `json:"reviews"`
	} `json:"result"`
}

func (s *reviewService) GetGoogleReviews(ctx context.Context) (*domain.ReviewSummary, error) {
	if s.cfg.GooglePlacesAPIKey == "" || s.cfg.GooglePlaceID == "" {
		return nil, ErrReviewsNotConfigured
	}

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, reviewsCacheKey).Result(); err == nil {
			var summary domain.ReviewSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return &summary, nil
			}
		}
	}

	details, err := s.fetchPlaceDetails(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(details.Result.Reviews))
	for _, review := range details.Result.Reviews {
		reviews = append(reviews, domain.Review{
			Name:         review.AuthorName,
			Date:         formatReviewDate(review.Time, time.Now()),
			Text:         review.Text,
			Rating:       review.Rating,
			ProfilePhoto: review.ProfilePhotoURL,
			RelativeTime: review.RelativeTimeDescription,
		})
	}

	summary := &domain.ReviewSummary{
		Rating:       details.Result.Rating,
		TotalReviews: details.Result.UserRatingsTotal,
		Reviews:      reviews,
	}

	if s.redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			_ = s.redis.Set(ctx, reviewsCacheKey, data, reviewsCacheTTL).Err()
		}
	}

	return summary, nil
}

func (s *reviewService) fetchPlaceDetails(ctx context.Context) (*placeDetailsResponse, error) {
	query := url.Values{}
	query.Set("place_id", s.cfg.GooglePlaceID)
	query.Set("fields", "name,rating,user_ratings_total,reviews")
	query.Set("key", s.cfg.GooglePlacesAPIKey)

	endpoint := s.baseURL + "/maps/api/place/details/json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReviewsUpstream, err)
	}
	defer resp.Body.Close()

	var details placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReviewsUpstream, err)
	}

	if details.Status != "OK" {
		message := details.ErrorMessage
		if message == "" {
			message = details.Status
		}
		return nil, fmt.Errorf("%w: %s", ErrReviewsUpstream, message)
	}

	return &details, nil
}

// formatReviewDate buckets a Unix timestamp into "N days/weeks/months/years
// ago" the same way the site has always rendered review dates.
func formatReviewDate(timestamp int64, now time.Time) string {
	if timestamp == 0 {
		return "Recently"
	}

	days := int(now.Sub(time.Unix(timestamp, 0)).Hours() / 24)
	if days < 1 {
		days = 1
	}

	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s ago", n, unit)
		}
		return fmt.Sprintf("%d %ss ago", n, unit)
	}

	switch {
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year")
	}
}
