package insights

import (
	"context"
	"errors"
	"time"

	"f1insights/internal/ai"
	"f1insights/internal/cache"
	"f1insights/internal/config"
	"f1insights/internal/httpx"
	"f1insights/internal/models"
	"f1insights/internal/news"
	"f1insights/internal/openf1"
)

// ErrNoGateway reports the missing credential once, at startup. AI
// commands surface it as-is; everything else works without it.
var ErrNoGateway = errors.New("OPENAI_API_KEY is not set: AI analysis features are disabled")

// Service is the shared context handed to every command: the
// configuration, the memo cache and the three external clients. It is
// built once in main and passed explicitly; there is no ambient global
// state.
type Service struct {
	Config *config.Config
	Memo   *cache.Cache
	OpenF1 *openf1.Client
	News   *news.Scraper

	// AI is nil when the credential is absent; GatewayErr then carries
	// the diagnostic. This is checked once here, not per call.
	AI         *ai.Gateway
	GatewayErr error
}

func New(cfg *config.Config) *Service {
	memo := cache.New(cfg.CacheTTL)

	svc := &Service{
		Config: cfg,
		Memo:   memo,
		OpenF1: openf1.NewClient(httpx.New(cfg.OpenF1BaseURL, memo)),
		// Articles are discovered fresh on every load, so the news
		// client bypasses the memo cache.
		News: news.NewScraper(httpx.New(cfg.NewsBaseURL, nil)),
	}

	if cfg.OpenAIAPIKey == "" {
		svc.GatewayErr = ErrNoGateway
	} else {
		svc.AI = ai.NewGateway(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return svc
}

func (s *Service) Close() {
	s.Memo.Close()
}

// FindDriver resolves a driver by exact full name. A nil driver with a
// nil error means the API knows nobody under that name.
func (s *Service) FindDriver(ctx context.Context, fullName string) (*models.Driver, error) {
	drivers, err := s.OpenF1.Drivers(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if len(drivers) == 0 {
		return nil, nil
	}
	return &drivers[0], nil
}

// Calendar returns the chronologically ordered race calendar for a
// year, with each entry tagged past or upcoming as of now.
func (s *Service) Calendar(ctx context.Context, year int) ([]models.CalendarEntry, error) {
	sessions, err := s.OpenF1.RaceSessions(ctx)
	if err != nil {
		return nil, err
	}
	return openf1.RacesForYear(sessions, year, time.Now()), nil
}

// Performance builds a driver's chronological finishing-position
// series for a season.
func (s *Service) Performance(ctx context.Context, driverNumber, year int) ([]openf1.PerformancePoint, error) {
	results, err := s.OpenF1.Results(ctx, driverNumber, year)
	if err != nil {
		return nil, err
	}
	return openf1.PerformanceSeries(ctx, results, s.OpenF1.Session), nil
}

// CompareDrivers fetches both drivers' season results, one after the
// other, and asks the model for a comparative analysis.
func (s *Service) CompareDrivers(ctx context.Context, driver1, driver2 models.Driver, year int) (string, error) {
	if s.AI == nil {
		return "", s.GatewayErr
	}

	results1, err := s.OpenF1.Results(ctx, driver1.DriverNumber, year)
	if err != nil {
		return "", err
	}
	results2, err := s.OpenF1.Results(ctx, driver2.DriverNumber, year)
	if err != nil {
		return "", err
	}

	data1 := s.formatDriverData(ctx, driver1.FullName, results1)
	data2 := s.formatDriverData(ctx, driver2.FullName, results2)
	return s.AI.CompareDrivers(ctx, data1, data2), nil
}

// AnalyzeArticle fetches the article body if it has not been loaded
// yet, then runs the three analysis tasks. The body fetch is the only
// step that can fail; each analysis task degrades on its own.
func (s *Service) AnalyzeArticle(ctx context.Context, article models.Article) (models.Analysis, error) {
	if s.AI == nil {
		return models.Analysis{}, s.GatewayErr
	}

	body := article.Body
	if body == "" {
		fetched, err := s.News.ArticleBody(ctx, article.URL)
		if err != nil {
			return models.Analysis{}, err
		}
		body = fetched
	}
	return s.AI.Analyze(ctx, body), nil
}
