package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"housemax/internal/domain"
	"housemax/pkg/utils"
)

var (
	ErrUnknownCategory = errors.New("unknown category index")
	ErrUnknownProduct  = errors.New("unknown product index")
)

// Store is what the pipeline needs from the catalog store. *repo.Catalog satisfies it.
type Store interface {
	UpsertCategory(ctx context.Context, c *domain.Category) (bool, error)
	UpsertProduct(ctx context.Context, p *domain.Product) (bool, error)
	UpsertUser(ctx context.Context, u *domain.User) (bool, error)
	CreateReview(ctx context.Context, r *domain.Review) error
	UpsertReview(ctx context.Context, r *domain.Review) (bool, error)
}

type ReviewMode string

const (
	// ReviewsAppend inserts every review on every run; re-runs duplicate them.
	ReviewsAppend ReviewMode = "append"
	// ReviewsKeyed skips a review when the author already reviewed the product.
	ReviewsKeyed ReviewMode = "keyed"
)

func ParseReviewMode(s string) (ReviewMode, error) {
	switch ReviewMode(s) {
	case "", ReviewsAppend:
		return ReviewsAppend, nil
	case ReviewsKeyed:
		return ReviewsKeyed, nil
	}
	return "", fmt.Errorf("unknown review mode %q", s)
}

type Options struct {
	// Concurrency bounds in-flight requests within a stage. Values < 1 mean 1.
	Concurrency      int
	ReviewMode       ReviewMode
	AdminPassword    string
	CustomerPassword string
}

type StageResult struct {
	Created int `json:"created"`
	Found   int `json:"found"`
}

func (s StageResult) Total() int { return s.Created + s.Found }

type Report struct {
	Categories StageResult
	Products   StageResult
	Users      StageResult
	Reviews    StageResult

	CategoryIDs []string
	ProductIDs  []string
	AdminID     string
	CustomerID  string
	ReviewIDs   []string
}

// Run seeds categories, products, users and reviews, in that order. Each stage
// completes before the next starts; the first error aborts the run.
func Run(ctx context.Context, st Store, opts Options, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rep := &Report{}
	var err error

	log.Info("creating categories", zap.Int("count", len(categories)))
	rep.CategoryIDs, rep.Categories, err = upsertAll(ctx, opts.Concurrency, len(categories), func(ctx context.Context, i int) (string, bool, error) {
		c := categories[i].model()
		created, err := st.UpsertCategory(ctx, &c)
		return c.ID, created, err
	})
	if err != nil {
		return rep, fmt.Errorf("seed categories: %w", err)
	}
	logStage(log, "categories", rep.Categories)

	log.Info("creating products", zap.Int("count", len(products)))
	rep.ProductIDs, rep.Products, err = upsertAll(ctx, opts.Concurrency, len(products), func(ctx context.Context, i int) (string, bool, error) {
		d := products[i]
		if d.category < 0 || d.category >= len(rep.CategoryIDs) {
			return "", false, fmt.Errorf("%w %d for %s", ErrUnknownCategory, d.category, d.slug)
		}
		p := d.model(rep.CategoryIDs[d.category])
		created, err := st.UpsertProduct(ctx, &p)
		return p.ID, created, err
	})
	if err != nil {
		return rep, fmt.Errorf("seed products: %w", err)
	}
	logStage(log, "products", rep.Products)

	log.Info("creating users")
	if rep.AdminID, err = upsertUser(ctx, st, admin, opts.AdminPassword, &rep.Users); err != nil {
		return rep, fmt.Errorf("seed admin user: %w", err)
	}
	if rep.CustomerID, err = upsertUser(ctx, st, customer, opts.CustomerPassword, &rep.Users); err != nil {
		return rep, fmt.Errorf("seed customer: %w", err)
	}
	logStage(log, "users", rep.Users)

	log.Info("creating reviews", zap.Int("count", len(reviews)), zap.String("mode", string(opts.ReviewMode)))
	rep.ReviewIDs, rep.Reviews, err = upsertAll(ctx, opts.Concurrency, len(reviews), func(ctx context.Context, i int) (string, bool, error) {
		d := reviews[i]
		if d.product < 0 || d.product >= len(rep.ProductIDs) {
			return "", false, fmt.Errorf("%w %d", ErrUnknownProduct, d.product)
		}
		r := d.model(rep.CustomerID, rep.ProductIDs[d.product])
		if opts.ReviewMode == ReviewsKeyed {
			created, err := st.UpsertReview(ctx, &r)
			return r.ID, created, err
		}
		if err := st.CreateReview(ctx, &r); err != nil {
			return "", false, err
		}
		return r.ID, true, nil
	})
	if err != nil {
		return rep, fmt.Errorf("seed reviews: %w", err)
	}
	logStage(log, "reviews", rep.Reviews)

	log.Info("seed completed",
		zap.Int("categories", rep.Categories.Total()),
		zap.Int("products", rep.Products.Total()),
		zap.Int("users", rep.Users.Total()),
		zap.Int("reviews", rep.Reviews.Total()),
	)
	return rep, nil
}

// upsertAll runs fn for 0..n-1 with at most limit calls in flight and returns
// the ids by input position.
func upsertAll(ctx context.Context, limit, n int, fn func(ctx context.Context, i int) (string, bool, error)) ([]string, StageResult, error) {
	ids := make([]string, n)
	created := make([]bool, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, limit))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id, ok, err := fn(gctx, i)
			if err != nil {
				return err
			}
			ids[i], created[i] = id, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, StageResult{}, err
	}

	var res StageResult
	for _, c := range created {
		if c {
			res.Created++
		} else {
			res.Found++
		}
	}
	return ids, res, nil
}

func upsertUser(ctx context.Context, st Store, d userDef, password string, res *StageResult) (string, error) {
	hash, err := utils.HashOrPlaceholder(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		Email:        d.email,
		Name:         d.name,
		Role:         d.role,
		PasswordHash: hash,
	}
	created, err := st.UpsertUser(ctx, &u)
	if err != nil {
		return "", err
	}
	if created {
		res.Created++
	} else {
		res.Found++
	}
	return u.ID, nil
}

func logStage(log *zap.Logger, stage string, r StageResult) {
	log.Info(stage+" seeded", zap.Int("created", r.Created), zap.Int("found", r.Found))
}
