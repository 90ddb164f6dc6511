package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/projects/domain"
)

const (
	projectKeyPrefix    = "gcf:project:"        // JSON blob per project: gcf:project:{id}
	projectIDSetKey     = "gcf:project:ids"     // Set of user-created project ids
	deletedSampleSetKey = "gcf:deleted-samples" // Sample project ids hidden from listings
)

// Repo provides persistence for the project collection on a Redis
// key-value store. Each project is one JSON blob; the set under
// projectIDSetKey indexes user-created records, and deleted sample
// fixtures are tracked by exclusion rather than removal.
type Repo struct {
	client *redis.Client
	log    *zap.Logger
	now    func() time.Time
}

func NewRepo(client *redis.Client, log *zap.Logger) *Repo {
	return &Repo{client: client, log: log, now: time.Now}
}

// Create allocates a new id, stamps provenance, and persists the record.
// Ids are millisecond timestamps; on collision the timestamp is bumped,
// with a bounded number of retries.
func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("name required")
	}

	now := r.now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	base := now.UnixMilli()
	for i := int64(0); i < 5; i++ {
		p.ID = strconv.FormatInt(base+i, 10)
		if _, ok := domain.SampleProject(p.ID); ok {
			continue
		}

		data, err := json.Marshal(&p)
		if err != nil {
			return nil, fmt.Errorf("marshal project: %w", err)
		}

		ok, err := r.client.SetNX(ctx, projectKeyPrefix+p.ID, data, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("store project: %w", err)
		}
		if !ok {
			// id taken, try the next millisecond
			continue
		}

		if err := r.client.SAdd(ctx, projectIDSetKey, p.ID).Err(); err != nil {
			return nil, fmt.Errorf("index project: %w", err)
		}
		return &p, nil
	}

	return nil, fmt.Errorf("allocate project id: %w", domain.ErrAlreadyExists)
}

// Get returns the project with the given id, checking stored records
// before the seeded samples. Sample projects hidden by a prior delete are
// reported as not found.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, projectKeyPrefix+id).Result()
	if err == nil {
		var p domain.Project
		if uerr := json.Unmarshal([]byte(data), &p); uerr != nil {
			r.log.Error("corrupt project record", zap.String("id", id), zap.Error(uerr))
			return nil, domain.ErrNotFound
		}
		return &p, nil
	}
	if err != redis.Nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	sample, ok := domain.SampleProject(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	deleted, err := r.client.SIsMember(ctx, deletedSampleSetKey, id).Result()
	if err != nil {
		return nil, fmt.Errorf("check deleted samples: %w", err)
	}
	if deleted {
		return nil, domain.ErrNotFound
	}
	return &sample, nil
}

// List returns the union of non-deleted sample projects and user-created
// records. A corrupt stored blob is logged and skipped; the listing never
// fails on bad data.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	deletedIDs, err := r.client.SMembers(ctx, deletedSampleSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list deleted samples: %w", err)
	}
	deleted := make(map[string]bool, len(deletedIDs))
	for _, id := range deletedIDs {
		deleted[id] = true
	}

	ids, err := r.client.SMembers(ctx, projectIDSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list project ids: %w", err)
	}
	stored := make(map[string]bool, len(ids))
	for _, id := range ids {
		stored[id] = true
	}

	out := make([]domain.Project, 0, len(domain.SampleProjects)+len(ids))
	for _, p := range domain.SampleProjects {
		// A sample that was edited has a stored copy under the same id;
		// the stored copy wins so the fixture is skipped here.
		if !deleted[p.ID] && !stored[p.ID] {
			out = append(out, p)
		}
	}

	for _, id := range ids {
		data, err := r.client.Get(ctx, projectKeyPrefix+id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get project %s: %w", id, err)
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			r.log.Error("corrupt project record", zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// Update replaces the stored fields of an existing record. Unknown ids
// return ErrNotFound: creation goes through Create, never through here.
// Updating a visible sample project materializes it as a stored record
// under its sample id, which is how sample projects become editable.
func (r *Repo) Update(ctx context.Context, id string, patch domain.Project) (*domain.Project, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = patch.Name
	existing.Number = patch.Number
	existing.Files = patch.Files
	if patch.GeneratedPlan != "" {
		existing.GeneratedPlan = patch.GeneratedPlan
	}
	if patch.CreatedBy != "" {
		existing.CreatedBy = patch.CreatedBy
	}
	existing.UpdatedAt = r.now().UTC()

	data, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, projectKeyPrefix+id, data, 0)
	pipe.SAdd(ctx, projectIDSetKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store project: %w", err)
	}

	return existing, nil
}

// SetGeneratedPlan persists the generated plan text on an existing record.
func (r *Repo) SetGeneratedPlan(ctx context.Context, id, plan string) (*domain.Project, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.GeneratedPlan = plan
	existing.UpdatedAt = r.now().UTC()

	data, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, projectKeyPrefix+id, data, 0)
	pipe.SAdd(ctx, projectIDSetKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store project: %w", err)
	}
	return existing, nil
}

// Delete removes a user-created project outright. Sample fixtures are
// hidden via the exclusion set instead, so the underlying fixture list is
// never mutated.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, ok := domain.SampleProject(id); ok {
		// A sample that was edited into a stored record still gets its
		// stored copy removed alongside the exclusion mark.
		pipe := r.client.Pipeline()
		pipe.SAdd(ctx, deletedSampleSetKey, id)
		pipe.Del(ctx, projectKeyPrefix+id)
		pipe.SRem(ctx, projectIDSetKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("delete sample project: %w", err)
		}
		return nil
	}

	n, err := r.client.Del(ctx, projectKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	if err := r.client.SRem(ctx, projectIDSetKey, id).Err(); err != nil {
		return fmt.Errorf("unindex project: %w", err)
	}
	return nil
}

// ResetDeletedSamples clears the sample exclusion set so every seeded
// fixture reappears in listings.
func (r *Repo) ResetDeletedSamples(ctx context.Context) error {
	if err := r.client.Del(ctx, deletedSampleSetKey).Err(); err != nil {
		return fmt.Errorf("reset deleted samples: %w", err)
	}
	return nil
}
