package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrosense/croprec-server/internal/mocks"
	"github.com/agrosense/croprec-server/internal/model"
	"github.com/agrosense/croprec-server/internal/testutil"
)

const adminEmail = "admin@gmail.com"

func TestReview_AdminGate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(s *Review) error
	}{
		{"history", func(s *Review) error {
			_, err := s.History(ctx, "user@example.com")
			return err
		}},
		{"export csv", func(s *Review) error {
			_, err := s.ExportCSV(ctx, "user@example.com")
			return err
		}},
		{"delete", func(s *Review) error {
			return s.Delete(ctx, "user@example.com", 1)
		}},
		{"delete all", func(s *Review) error {
			return s.DeleteAll(ctx, "user@example.com")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictionStore := mocks.NewPredictionStore(t)
			s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

			err := tt.call(s)
			require.ErrorIs(t, err, model.ErrAccessDenied)

			predictionStore.AssertNotCalled(t, "ListAll", mock.Anything)
			predictionStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			predictionStore.AssertNotCalled(t, "DeleteAll", mock.Anything)
		})
	}
}

func TestReview_History(t *testing.T) {
	records := []model.Prediction{
		{ID: 2, Email: "b@example.com", Crop: "maize"},
		{ID: 1, Email: "a@example.com", Crop: "rice"},
	}

	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("ListAll", mock.Anything).Return(records, nil)

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	got, err := s.History(context.Background(), adminEmail)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReview_History_StoreError(t *testing.T) {
	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("ListAll", mock.Anything).Return(nil, errors.New("timeout"))

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	_, err := s.History(context.Background(), adminEmail)
	require.Error(t, err)
}

func TestReview_ExportCSV(t *testing.T) {
	ts := time.Date(2024, 5, 17, 9, 30, 45, 0, time.UTC)
	records := []model.Prediction{
		{
			ID:          7,
			Email:       "a@example.com",
			Nitrogen:    90,
			Phosphorus:  42,
			Potassium:   43,
			Temperature: 20.879744,
			Humidity:    82,
			PH:          6.5,
			Rainfall:    202.9355362,
			Crop:        "rice",
			CreatedAt:   ts,
		},
	}

	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("ListAll", mock.Anything).Return(records, nil)

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	data, err := s.ExportCSV(context.Background(), adminEmail)
	require.NoError(t, err)

	want := "ID,User Email,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH,Rainfall,Predicted Crop,Timestamp\n" +
		"7,a@example.com,90,42,43,20.879744,82,6.5,202.9355362,rice,2024-05-17 09:30:45\n"
	assert.Equal(t, want, string(data))
}

func TestReview_ExportCSV_Empty(t *testing.T) {
	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("ListAll", mock.Anything).Return([]model.Prediction{}, nil)

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	data, err := s.ExportCSV(context.Background(), adminEmail)
	require.NoError(t, err)
	assert.Equal(t, "ID,User Email,Nitrogen,Phosphorus,Potassium,Temperature,Humidity,pH,Rainfall,Predicted Crop,Timestamp\n", string(data))
}

func TestReview_Delete(t *testing.T) {
	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("Delete", mock.Anything, int64(42)).Return(nil)

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(context.Background(), adminEmail, 42))
}

func TestReview_Delete_StoreError(t *testing.T) {
	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("Delete", mock.Anything, int64(42)).Return(errors.New("timeout"))

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	require.Error(t, s.Delete(context.Background(), adminEmail, 42))
}

func TestReview_DeleteAll(t *testing.T) {
	predictionStore := mocks.NewPredictionStore(t)
	predictionStore.On("DeleteAll", mock.Anything).Return(nil)

	s := NewReview(predictionStore, adminEmail, testutil.MakeNoopLogger())

	require.NoError(t, s.DeleteAll(context.Background(), adminEmail))
}
