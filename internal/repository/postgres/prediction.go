package postgres

import (
	"context"
	"fmt"

	"github.com/agrosense/croprec-server/internal/model"
)

var _ model.PredictionStore = (*PredictionRepository)(nil)

type PredictionRepository struct {
	db *Connection
}

func NewPredictionRepository(db *Connection) *PredictionRepository {
	return &PredictionRepository{
		db: db,
	}
}

func (r *PredictionRepository) Create(ctx context.Context, prediction model.Prediction) (model.Prediction, error) {
	query := `INSERT INTO predictions (email, nitrogen, phosphorus, potassium, temperature, humidity, ph, rainfall, crop, "timestamp")
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, email, nitrogen, phosphorus, potassium, temperature, humidity, ph, rainfall, crop, "timestamp"`

	var saved model.Prediction
	err := r.db.QueryRowContext(ctx, query,
		prediction.Email, prediction.Nitrogen, prediction.Phosphorus, prediction.Potassium,
		prediction.Temperature, prediction.Humidity, prediction.PH, prediction.Rainfall,
		prediction.Crop, prediction.CreatedAt,
	).Scan(
		&saved.ID, &saved.Email, &saved.Nitrogen, &saved.Phosphorus, &saved.Potassium,
		&saved.Temperature, &saved.Humidity, &saved.PH, &saved.Rainfall,
		&saved.Crop, &saved.CreatedAt,
	)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to create prediction: %w", err)
	}

	return saved, nil
}

func (r *PredictionRepository) ListAll(ctx context.Context) ([]model.Prediction, error) {
	query := `SELECT id, email, nitrogen, phosphorus, potassium, temperature, humidity, ph, rainfall, crop, "timestamp"
			  FROM predictions
			  ORDER BY "timestamp" DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []model.Prediction
	for rows.Next() {
		var p model.Prediction
		err := rows.Scan(
			&p.ID, &p.Email, &p.Nitrogen, &p.Phosphorus, &p.Potassium,
			&p.Temperature, &p.Humidity, &p.PH, &p.Rainfall,
			&p.Crop, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}

	return predictions, nil
}

// Delete removes the record with the given id. Deleting an absent id is not
// an error.
func (r *PredictionRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM predictions WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) DeleteAll(ctx context.Context) error {
	const query = `DELETE FROM predictions`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to delete predictions: %w", err)
	}
	return nil
}
