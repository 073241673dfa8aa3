package services

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/geo"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/metrics"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/tx"
)

//go:generate mockgen -source=question.go -destination=question_mock.go -package=services

// QuestionReader defines read-only operations for questions.
type QuestionReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.QuestionDB, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.QuestionDB, error)
	ListLocations(ctx context.Context) ([]models.QuestionLocation, error)
	SearchWithin(ctx context.Context, longitude, latitude, radius float64, limit int, minAbsLatitude float64) ([]models.GeoHit, error)
}

// QuestionWriter defines write operations for questions.
type QuestionWriter interface {
	Save(ctx context.Context, id uuid.UUID, title, content string, longitude, latitude float64, authorID uuid.UUID) (*models.QuestionDB, error)
	AppendAnswer(ctx context.Context, questionID, answerID uuid.UUID) error
	IncrementLikeCount(ctx context.Context, id uuid.UUID) (int64, error)
	DecrementLikeCount(ctx context.Context, id uuid.UUID) (int64, error)
}

// GeoIndex is the spatial index over question locations.
type GeoIndex interface {
	Add(ctx context.Context, id uuid.UUID, longitude, latitude float64) error
	Search(ctx context.Context, longitude, latitude, radius float64, limit int) ([]models.GeoHit, error)
	Replace(ctx context.Context, load func(ctx context.Context) ([]models.QuestionLocation, error)) (int, error)
	Ready() bool
}

// QuestionService creates, finds and indexes questions.
type QuestionService struct {
	reader  QuestionReader
	writer  QuestionWriter
	answers AnswerReader
	geo     GeoIndex
	events  EventPublisher
}

// NewQuestionService creates a new QuestionService instance.
func NewQuestionService(
	reader QuestionReader,
	writer QuestionWriter,
	answers AnswerReader,
	geo GeoIndex,
	events EventPublisher,
) *QuestionService {
	return &QuestionService{
		reader:  reader,
		writer:  writer,
		answers: answers,
		geo:     geo,
		events:  events,
	}
}

// Create stores a question with no answers and no likes and indexes its
// location once the surrounding transaction commits.
func (svc *QuestionService) Create(
	ctx context.Context,
	authorID uuid.UUID,
	title, content string,
	longitude, latitude *float64,
) (*models.Question, error) {
	req := models.CreateQuestionRequest{
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		Longitude: longitude,
		Latitude:  latitude,
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	point := geo.Point{Longitude: *longitude, Latitude: *latitude}
	if err := point.Validate(); err != nil {
		return nil, validationError("%v", err)
	}

	row, err := svc.writer.Save(ctx, uuid.New(), req.Title, req.Content, point.Longitude, point.Latitude, authorID)
	if err != nil {
		if isForeignKeyViolation(err) {
			logger.Log.Infow("question author does not exist", "author_id", authorID)
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to save question", "err", err)
		return nil, err
	}

	tx.AfterCommit(ctx, func(ctx context.Context) {
		if err := svc.geo.Add(ctx, row.ID, row.Longitude, row.Latitude); err != nil {
			// the next rebuild picks it up
			logger.Log.Warnw("failed to index question location", "question_id", row.ID, "err", err)
		}
	})
	publishAfterCommit(ctx, svc.events, newEvent(models.EventQuestionCreated, authorID, row.ID))

	question := models.NewQuestion(row, nil)
	return &question, nil
}

// FindNearby returns questions within the radius of the center, nearest first,
// each carrying its distance in meters. An unusable spatial index yields an
// empty result rather than an error.
func (svc *QuestionService) FindNearby(ctx context.Context, query models.NearbyQuery) ([]models.Question, error) {
	center := geo.Point{Longitude: query.Longitude, Latitude: query.Latitude}
	if err := center.Validate(); err != nil {
		return nil, validationError("%v", err)
	}

	radius := models.DefaultNearbyRadius
	if query.Radius != nil {
		radius = *query.Radius
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, validationError("radius must be a positive number of meters")
	}

	limit := models.DefaultNearbyLimit
	if query.Limit != nil {
		limit = *query.Limit
	}
	if limit <= 0 {
		return nil, validationError("limit must be positive")
	}
	limit = min(limit, models.MaxNearbyLimit)

	hits, degraded, err := svc.nearbyHits(ctx, center, radius, limit)
	if err != nil {
		logger.Log.Errorw("failed to search nearby questions", "err", err)
		return nil, err
	}
	metrics.RecordNearbySearch(degraded)

	if len(hits) == 0 {
		return []models.Question{}, nil
	}

	ids := make([]uuid.UUID, len(hits))
	for i, hit := range hits {
		ids[i] = hit.ID
	}

	rows, err := svc.reader.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load nearby questions", "err", err)
		return nil, err
	}

	byID := make(map[uuid.UUID]models.QuestionDB, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	// keep index order and drop anything the stored coordinates put outside the radius
	ordered := make([]models.QuestionDB, 0, len(hits))
	distances := make([]float64, 0, len(hits))
	for _, hit := range hits {
		row, ok := byID[hit.ID]
		if !ok {
			continue
		}
		d := geo.Distance(center, geo.Point{Longitude: row.Longitude, Latitude: row.Latitude})
		if d > radius {
			continue
		}
		ordered = append(ordered, row)
		distances = append(distances, d)
	}

	questions, err := expandQuestions(ctx, svc.answers, ordered)
	if err != nil {
		logger.Log.Errorw("failed to expand nearby questions", "err", err)
		return nil, err
	}
	for i := range questions {
		d := distances[i]
		questions[i].Distance = &d
	}

	return questions, nil
}

// nearbyHits finds candidate ids nearest first. Centers outside the Redis GEO
// band are scanned in the database; circles reaching into a polar cap add the
// polar rows the index cannot hold. A failing index degrades to no hits.
func (svc *QuestionService) nearbyHits(ctx context.Context, center geo.Point, radius float64, limit int) ([]models.GeoHit, bool, error) {
	if !center.Indexable() {
		hits, err := svc.reader.SearchWithin(ctx, center.Longitude, center.Latitude, radius, limit, 0)
		return hits, false, err
	}

	hits, err := svc.geo.Search(ctx, center.Longitude, center.Latitude, radius, limit)
	if err != nil {
		logger.Log.Warnw("nearby search degraded", "err", err)
		return nil, true, nil
	}
	if !geo.ReachesPolarCap(center, radius) {
		return hits, false, nil
	}

	polar, err := svc.reader.SearchWithin(ctx, center.Longitude, center.Latitude, radius, limit, geo.MaxIndexableLatitude)
	if err != nil {
		return nil, false, err
	}
	return mergeHits(hits, polar, limit), false, nil
}

// mergeHits combines two nearest-first hit lists, dropping repeated ids.
func mergeHits(a, b []models.GeoHit, limit int) []models.GeoHit {
	merged := make([]models.GeoHit, 0, len(a)+len(b))
	seen := make(map[uuid.UUID]struct{}, len(a)+len(b))
	for _, hit := range slices.Concat(a, b) {
		if _, ok := seen[hit.ID]; ok {
			continue
		}
		seen[hit.ID] = struct{}{}
		merged = append(merged, hit)
	}
	slices.SortStableFunc(merged, func(x, y models.GeoHit) int {
		return cmp.Compare(x.Distance, y.Distance)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// GetByID returns the question with its author and answers expanded.
func (svc *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	row, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get question", "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrQuestionNotFound
	}

	questions, err := expandQuestions(ctx, svc.answers, []models.QuestionDB{*row})
	if err != nil {
		logger.Log.Errorw("failed to expand question", "err", err)
		return nil, err
	}
	return &questions[0], nil
}

// RebuildGeoIndex reloads every question location into the spatial index.
func (svc *QuestionService) RebuildGeoIndex(ctx context.Context) (int, error) {
	n, err := svc.geo.Replace(ctx, svc.reader.ListLocations)
	metrics.RecordGeoIndexRebuild(n, err == nil)
	if err != nil {
		logger.Log.Errorw("failed to rebuild geo index", "err", err)
		return 0, err
	}
	return n, nil
}

// GeoIndexReady reports whether nearby searches are served from a built index.
func (svc *QuestionService) GeoIndexReady() bool {
	return svc.geo.Ready()
}
