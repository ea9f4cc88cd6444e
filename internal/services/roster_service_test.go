package services

import (
	"context"
	"testing"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_CreateWorker(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	worker, err := svc.CreateWorker(ctx, "p1", WorkerInput{Name: "  Kamala ", Experience: "3 yrs", Age: 41, Gender: models.GenderOther})
	require.NoError(t, err)
	assert.NotEmpty(t, worker.ID)
	assert.Equal(t, "Kamala", worker.Name)
	assert.Equal(t, "p1", worker.PlantationID)

	list, err := svc.ListWorkers(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRosterService_CreateWorkerValidation(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	tests := []struct {
		name         string
		plantationID string
		in           WorkerInput
	}{
		{"no plantation", "", WorkerInput{Name: "A", Gender: models.GenderMale}},
		{"blank name", "p1", WorkerInput{Name: "   ", Gender: models.GenderMale}},
		{"negative age", "p1", WorkerInput{Name: "A", Age: -1, Gender: models.GenderMale}},
		{"unknown gender", "p1", WorkerInput{Name: "A", Gender: "Unknown"}},
		{"missing gender", "p1", WorkerInput{Name: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWorker(ctx, tt.plantationID, tt.in)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestRosterService_CreateField(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	field, err := svc.CreateField(ctx, "p1", FieldInput{Name: "North Slope", Slope: 22.5, MaxWorkers: 4})
	require.NoError(t, err)
	assert.NotEqual(t, "North Slope", field.ID)

	_, err = svc.CreateField(ctx, "p1", FieldInput{Name: "Bad", Slope: -3})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.CreateField(ctx, "p1", FieldInput{Name: "Bad", MaxWorkers: -1})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	list, err := svc.ListFields(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 22.5, list[0].Slope)
}

func TestRosterService_ImportRoster(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	roster := Roster{
		PlantationID: "p1",
		Workers: []WorkerInput{
			{ID: "w1", Name: "Kamala", Age: 41, Gender: models.GenderFemale},
			{Name: "", Age: 30, Gender: models.GenderMale},
			{ID: "w3", Name: "Sunil", Age: 35, Gender: models.GenderMale},
		},
		Fields: []FieldInput{
			{Name: "Upper Division", Slope: 12},
			{ID: "f2", Name: "Lower Division", Slope: 4},
		},
	}

	result, err := svc.ImportRoster(ctx, roster, ImportOptions{UseNameAsID: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.WorkersCreated)
	assert.Equal(t, 2, result.FieldsCreated)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0], "worker 1")

	byName, err := repos.fields.FindByID(ctx, "p1", "Upper Division")
	require.NoError(t, err)
	require.NotNil(t, byName)
	keyed, err := repos.fields.FindByID(ctx, "p1", "f2")
	require.NoError(t, err)
	require.NotNil(t, keyed)
}

func TestRosterService_ImportRosterStrict(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	roster := Roster{
		PlantationID: "p1",
		Workers: []WorkerInput{
			{ID: "w1", Name: "Kamala", Age: 41, Gender: models.GenderFemale},
			{ID: "w2", Name: "Nimal", Age: -4, Gender: models.GenderMale},
		},
	}

	result, err := svc.ImportRoster(ctx, roster, ImportOptions{Strict: true})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, 1, result.WorkersCreated)

	_, err = svc.ImportRoster(ctx, Roster{}, ImportOptions{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRosterService_ImportSameFieldNameIntoTwoPlantations(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	for _, plantation := range []string{"estate-1", "estate-2"} {
		result, err := svc.ImportRoster(ctx, Roster{
			PlantationID: plantation,
			Fields:       []FieldInput{{Name: "North", Slope: 10}},
		}, ImportOptions{UseNameAsID: true, Strict: true})
		require.NoError(t, err, plantation)
		assert.Equal(t, 1, result.FieldsCreated)
	}

	for _, plantation := range []string{"estate-1", "estate-2"} {
		field, err := repos.fields.FindByID(ctx, plantation, "North")
		require.NoError(t, err)
		require.NotNil(t, field, plantation)
		assert.Equal(t, plantation, field.PlantationID)
	}
}

func TestRosterService_UpdateAndDeleteWorker(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	_, err := svc.CreateWorker(ctx, "p1", WorkerInput{ID: "w1", Name: "Kamala", Age: 41, Gender: models.GenderFemale})
	require.NoError(t, err)

	updated, err := svc.UpdateWorker(ctx, "p1", "w1", WorkerInput{Name: " Kamala P ", Experience: "12 years", Age: 42, Gender: models.GenderFemale})
	require.NoError(t, err)
	assert.Equal(t, "w1", updated.ID)
	assert.Equal(t, "Kamala P", updated.Name)

	stored, err := repos.workers.FindByID(ctx, "p1", "w1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 42, stored.Age)
	assert.Equal(t, "12 years", stored.Experience)

	_, err = svc.UpdateWorker(ctx, "p1", "w1", WorkerInput{Name: "Kamala", Age: -1, Gender: models.GenderFemale})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.UpdateWorker(ctx, "p2", "w1", WorkerInput{Name: "Kamala", Gender: models.GenderFemale})
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	assert.ErrorIs(t, svc.DeleteWorker(ctx, "p2", "w1"), ErrWorkerNotFound)
	require.NoError(t, svc.DeleteWorker(ctx, "p1", "w1"))
	assert.ErrorIs(t, svc.DeleteWorker(ctx, "p1", "w1"), ErrWorkerNotFound)

	list, err := svc.ListWorkers(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRosterService_UpdateAndDeleteField(t *testing.T) {
	repos := setupServiceTestDB(t)
	svc := NewRosterService(repos.workers, repos.fields, nil)
	ctx := context.Background()

	_, err := svc.CreateField(ctx, "p1", FieldInput{ID: "f1", Name: "Upper", Slope: 12, MaxWorkers: 3})
	require.NoError(t, err)

	updated, err := svc.UpdateField(ctx, "p1", "f1", FieldInput{Name: "Upper", Slope: 18, MaxWorkers: 5, Location: "east ridge"})
	require.NoError(t, err)
	assert.Equal(t, 18.0, updated.Slope)

	stored, err := repos.fields.FindByID(ctx, "p1", "f1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 5, stored.MaxWorkers)
	assert.Equal(t, "east ridge", stored.Location)

	_, err = svc.UpdateField(ctx, "p1", "f1", FieldInput{Name: "Upper", Slope: -2})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.UpdateField(ctx, "p1", "missing", FieldInput{Name: "Upper"})
	assert.ErrorIs(t, err, ErrFieldNotFound)

	require.NoError(t, svc.DeleteField(ctx, "p1", "f1"))
	assert.ErrorIs(t, svc.DeleteField(ctx, "p1", "f1"), ErrFieldNotFound)
}
