package repository

import (
	"context"
	"fmt"
	"strings"

	"novelhub/internal/http-api/models"
	"novelhub/internal/search"

	"gorm.io/gorm"
)

type NovelRepo struct {
	db *gorm.DB
}

func NewNovelRepo(db *gorm.DB) *NovelRepo {
	return &NovelRepo{db: db}
}

func (r *NovelRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Novel, int64, error) {
	var list []models.Novel
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Novel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *NovelRepo) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	var n models.Novel
	if err := r.db.WithContext(ctx).Preload("Genres").Preload("Tags").First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NovelRepo) Create(ctx context.Context, n *models.Novel) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create novel: %w", err)
	}
	return nil
}

func (r *NovelRepo) Update(ctx context.Context, id int64, n *models.Novel) error {
	n.ID = id
	if err := r.db.WithContext(ctx).Save(n).Error; err != nil {
		return fmt.Errorf("update novel: %w", err)
	}
	return nil
}

func (r *NovelRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Novel{}, id).Error; err != nil {
		return fmt.Errorf("delete novel: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter without touching updated_at.
func (r *NovelRepo) IncrementViews(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Novel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// Search compiles the normalized query into one predicate over novels
// and returns the matching page plus the filtered total. Genre names
// were already resolved to ids by the caller; an active genre filter
// whose names all failed to resolve matches nothing.
func (r *NovelRepo) Search(ctx context.Context, q search.Query, genreIDs []int64) ([]models.Novel, int64, error) {
	base := r.applyFilters(r.db.WithContext(ctx).Model(&models.Novel{}), q, genreIDs)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count search results: %w", err)
	}

	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.Novel{}), q, genreIDs).
		Preload("Genres").
		Preload("Tags").
		Offset(q.Offset()).
		Limit(q.Limit)
	if order := q.OrderClause(); order != "" {
		query = query.Order(order)
	}

	var list []models.Novel
	if err := query.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search novels: %w", err)
	}
	return list, total, nil
}

// applyFilters ANDs every active constraint onto the query. The free
// text clause is tokenized: each token must appear in title, author or
// one of the tags (case-insensitive), same shape as the catalog search
// in the basic title endpoint.
func (r *NovelRepo) applyFilters(db *gorm.DB, q search.Query, genreIDs []int64) *gorm.DB {
	const tagMatch = "EXISTS (SELECT 1 FROM novel_tags nt JOIN tags t ON t.id = nt.tag_id WHERE nt.novel_id = novels.id AND t.name ILIKE ?)"

	if tokens := q.Terms(); len(tokens) > 0 {
		clauses := make([]string, 0, len(tokens))
		args := make([]interface{}, 0, len(tokens)*3)
		for _, tok := range tokens {
			p := "%" + tok + "%"
			clauses = append(clauses, "(title ILIKE ? OR COALESCE(author,'') ILIKE ? OR "+tagMatch+")")
			args = append(args, p, p, p)
		}
		db = db.Where(strings.Join(clauses, " AND "), args...)
	}

	if len(q.Genres) > 0 {
		if len(genreIDs) == 0 {
			// filter requested but no name resolved
			db = db.Where("1 = 0")
		} else {
			db = db.Where("EXISTS (SELECT 1 FROM novel_genres ng WHERE ng.novel_id = novels.id AND ng.genre_id IN ?)", genreIDs)
		}
	}

	if len(q.Statuses) > 0 {
		db = db.Where("status IN ?", q.Statuses)
	}

	if len(q.Tags) > 0 {
		db = db.Where("EXISTS (SELECT 1 FROM novel_tags nt JOIN tags t ON t.id = nt.tag_id WHERE nt.novel_id = novels.id AND t.name IN ?)", q.Tags)
	}

	db = db.Where("rating_average >= ? AND rating_average <= ?", q.RatingMin, q.RatingMax)

	if q.ChapterMin > 0 {
		db = db.Where("total_chapters >= ?", q.ChapterMin)
	}
	if q.ChapterMax != nil {
		db = db.Where("total_chapters <= ?", *q.ChapterMax)
	}

	return db
}

// FacetsByGenre counts novels per genre over the whole catalog.
func (r *NovelRepo) FacetsByGenre(ctx context.Context) ([]search.Facet, error) {
	var facets []search.Facet
	if err := r.db.WithContext(ctx).
		Table("genres").
		Select("genres.name AS name, COUNT(ng.novel_id) AS count").
		Joins("LEFT JOIN novel_genres ng ON ng.genre_id = genres.id").
		Group("genres.name").
		Order("count DESC").
		Scan(&facets).Error; err != nil {
		return nil, fmt.Errorf("genre facets: %w", err)
	}
	return facets, nil
}

// FacetsByStatus counts novels per status over the whole catalog.
func (r *NovelRepo) FacetsByStatus(ctx context.Context) ([]search.Facet, error) {
	var facets []search.Facet
	if err := r.db.WithContext(ctx).
		Model(&models.Novel{}).
		Select("status AS name, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&facets).Error; err != nil {
		return nil, fmt.Errorf("status facets: %w", err)
	}
	return facets, nil
}

// SuggestTitles returns the most viewed novels whose title contains the
// partial query, case-insensitively.
func (r *NovelRepo) SuggestTitles(ctx context.Context, partial string, limit int) ([]models.Novel, error) {
	var list []models.Novel
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+partial+"%").
		Order("views desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("suggest titles: %w", err)
	}
	return list, nil
}

// AuthorCount pairs an author name with the number of novels they have
// in the catalog.
type AuthorCount struct {
	Name  string
	Count int64
}

// SuggestAuthors returns distinct authors matching the partial query,
// most prolific first.
func (r *NovelRepo) SuggestAuthors(ctx context.Context, partial string, limit int) ([]AuthorCount, error) {
	var list []AuthorCount
	if err := r.db.WithContext(ctx).
		Model(&models.Novel{}).
		Select("author AS name, COUNT(*) AS count").
		Where("author IS NOT NULL AND author ILIKE ?", "%"+partial+"%").
		Group("author").
		Order("count DESC").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("suggest authors: %w", err)
	}
	return list, nil
}

// ReplaceGenres swaps the novel's genre associations for the given set.
func (r *NovelRepo) ReplaceGenres(ctx context.Context, novelID int64, genreIDs []int64) error {
	tx := r.db.WithContext(ctx).Begin()
	var n models.Novel
	if err := tx.First(&n, novelID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("novel not found: %w", err)
	}
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	if err := tx.Model(&n).Association("Genres").Replace(&genres); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace genres: %w", err)
	}
	return tx.Commit().Error
}

// ReplaceTags swaps the novel's tags for the given names, creating tag
// rows for names seen for the first time.
func (r *NovelRepo) ReplaceTags(ctx context.Context, novelID int64, names []string) error {
	tx := r.db.WithContext(ctx).Begin()
	var n models.Novel
	if err := tx.First(&n, novelID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("novel not found: %w", err)
	}
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("ensure tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	if err := tx.Model(&n).Association("Tags").Replace(&tags); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace tags: %w", err)
	}
	return tx.Commit().Error
}
