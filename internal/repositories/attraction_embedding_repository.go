package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"rehla/internal/models/db_models"
)

type AttractionEmbeddingRepository interface {
	ListByVector(vector pgvector.Vector, city string) ([]db_models.AttractionEmbedding, error)
	CreateEmbedding(embedding db_models.AttractionEmbedding) error
}

type attractionEmbeddingRepository struct {
	db *gorm.DB
}

func NewAttractionEmbeddingRepository(db *gorm.DB) AttractionEmbeddingRepository {
	return &attractionEmbeddingRepository{db: db}
}

// ListByVector returns the closest attraction embeddings by cosine distance,
// keeping only matches above 70% similarity. An empty city skips the city
// filter.
func (r *attractionEmbeddingRepository) ListByVector(vector pgvector.Vector, city string) ([]db_models.AttractionEmbedding, error) {
	var results []db_models.AttractionEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM attraction_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
          AND ($2 = '' OR LOWER(city) = LOWER($2))
        ORDER BY embedding <=> $1
        LIMIT 15
    `

	if err := r.db.Raw(query, vector.String(), city).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *attractionEmbeddingRepository) CreateEmbedding(embedding db_models.AttractionEmbedding) error {
	return r.db.Create(&embedding).Error
}
