package repositories

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/askaround/internal/geo"
	"github.com/sbilibin2017/askaround/internal/logger"
	"github.com/sbilibin2017/askaround/internal/models"
)

var (
	// ErrGeoIndexNotReady is returned by Search until the first Replace completes.
	ErrGeoIndexNotReady = errors.New("geo index is not ready")
	// ErrOutsideGeoBand is returned by Search for centers Redis GEO cannot take.
	ErrOutsideGeoBand = errors.New("center is outside the indexable latitude band")
)

const geoAddBatch = 500

// QuestionGeoRepository keeps question locations in a Redis GEO set.
type QuestionGeoRepository struct {
	client *redis.Client
	key    string

	ready      atomic.Bool
	rebuilding atomic.Bool
	mu         sync.Mutex // serializes Replace
}

// NewQuestionGeoRepository creates a repository over the GEO set at key.
func NewQuestionGeoRepository(client *redis.Client, key string) *QuestionGeoRepository {
	return &QuestionGeoRepository{client: client, key: key}
}

func (r *QuestionGeoRepository) rebuildKey() string {
	return r.key + ":rebuild"
}

// Ready reports whether the index has been built at least once.
func (r *QuestionGeoRepository) Ready() bool {
	return r.ready.Load()
}

// Add indexes one question location. During a rebuild the location is written
// to the pending set too so the swap does not drop it. Locations outside the
// indexable band are skipped; they are served from the database.
func (r *QuestionGeoRepository) Add(ctx context.Context, id uuid.UUID, longitude, latitude float64) error {
	if !(geo.Point{Longitude: longitude, Latitude: latitude}).Indexable() {
		logger.Log.Debugw("geoadd skipped outside band", "key", r.key, "member", id, "latitude", latitude)
		return nil
	}

	loc := &redis.GeoLocation{Name: id.String(), Longitude: longitude, Latitude: latitude}

	pipe := r.client.TxPipeline()
	pipe.GeoAdd(ctx, r.key, loc)
	if r.rebuilding.Load() {
		pipe.GeoAdd(ctx, r.rebuildKey(), loc)
	}
	_, err := pipe.Exec(ctx)

	logger.Log.Debugw("geoadd",
		"key", r.key,
		"member", loc.Name,
		"longitude", longitude,
		"latitude", latitude,
		"error", err,
	)

	return err
}

// Search returns members within radius meters of the center, nearest first.
func (r *QuestionGeoRepository) Search(ctx context.Context, longitude, latitude, radius float64, limit int) ([]models.GeoHit, error) {
	if !r.Ready() {
		return nil, ErrGeoIndexNotReady
	}
	if !(geo.Point{Longitude: longitude, Latitude: latitude}).Indexable() {
		return nil, ErrOutsideGeoBand
	}

	locs, err := r.client.GeoSearchLocation(ctx, r.key, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  longitude,
			Latitude:   latitude,
			Radius:     radius,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithDist: true,
	}).Result()

	logger.Log.Debugw("geosearch",
		"key", r.key,
		"longitude", longitude,
		"latitude", latitude,
		"radius", radius,
		"limit", limit,
		"result", len(locs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	hits := make([]models.GeoHit, 0, len(locs))
	for _, loc := range locs {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			logger.Log.Warnw("skipping malformed geo member", "key", r.key, "member", loc.Name)
			continue
		}
		hits = append(hits, models.GeoHit{ID: id, Distance: loc.Dist})
	}
	return hits, nil
}

// Replace rebuilds the index from the locations returned by load and swaps it
// in atomically. It marks the index ready on success and returns the number of
// locations indexed. Locations outside the indexable band are left out.
func (r *QuestionGeoRepository) Replace(ctx context.Context, load func(ctx context.Context) ([]models.QuestionLocation, error)) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := r.rebuildKey()
	if err := r.client.Del(ctx, pending).Err(); err != nil {
		return 0, err
	}

	r.rebuilding.Store(true)
	defer r.rebuilding.Store(false)

	locations, err := load(ctx)
	if err != nil {
		return 0, err
	}

	batch := make([]*redis.GeoLocation, 0, min(len(locations), geoAddBatch))
	indexed, skipped := 0, 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := r.client.GeoAdd(ctx, pending, batch...).Err()
		batch = batch[:0]
		return err
	}

	for _, loc := range locations {
		if !(geo.Point{Longitude: loc.Longitude, Latitude: loc.Latitude}).Indexable() {
			skipped++
			continue
		}
		batch = append(batch, &redis.GeoLocation{
			Name:      loc.ID.String(),
			Longitude: loc.Longitude,
			Latitude:  loc.Latitude,
		})
		indexed++
		if len(batch) == geoAddBatch {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}

	// an Add during the load may have created the pending set even when nothing was indexed here
	exists, err := r.client.Exists(ctx, pending).Result()
	if err == nil {
		if exists == 0 {
			err = r.client.Del(ctx, r.key).Err()
		} else {
			err = r.client.Rename(ctx, pending, r.key).Err()
		}
	}

	logger.Log.Infow("geo index rebuilt",
		"key", r.key,
		"entries", indexed,
		"skipped_outside_band", skipped,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	r.ready.Store(true)
	return indexed, nil
}
