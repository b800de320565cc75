package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatrack/visitador/internal/models"
)

func validForm() *models.SatisfactionForm {
	return &models.SatisfactionForm{
		VisitID:   "visit-1",
		Rating:    4,
		Comments:  "ok",
		Signature: "iVBORw0KGgo=",
		Location: &models.GeoPoint{
			Latitude:  -34.603722,
			Longitude: -58.381592,
			Accuracy:  12,
			Timestamp: time.Now(),
		},
	}
}

func TestValidateForm_Valid(t *testing.T) {
	require.NoError(t, ValidateForm(validForm()))
}

func TestValidateForm_MissingSignature(t *testing.T) {
	form := validForm()
	form.Signature = ""

	err := ValidateForm(form)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSignature)
}

func TestValidateForm_MissingLocation(t *testing.T) {
	form := validForm()
	form.Location = nil

	err := ValidateForm(form)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingLocation)
}

func TestValidateForm_CollectsAllErrors(t *testing.T) {
	form := &models.SatisfactionForm{Rating: 0}

	err := ValidateForm(form)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVisitID)
	assert.ErrorIs(t, err, ErrMissingSignature)
	assert.ErrorIs(t, err, ErrMissingLocation)
	assert.Contains(t, err.Error(), "rating must be between 1 and 5")
}

func TestValidateRating_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{name: "below range", rating: 0, wantErr: true},
		{name: "lower bound", rating: 1, wantErr: false},
		{name: "upper bound", rating: 5, wantErr: false},
		{name: "above range", rating: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRating(tt.rating)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCoordinates_OutOfRange(t *testing.T) {
	err := ValidateCoordinates(91, -181)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestValidateVisit(t *testing.T) {
	visit := &models.VisitRecord{
		DoctorID:    "doc-1",
		PerformedAt: time.Now(),
	}
	require.NoError(t, ValidateVisit(visit))

	err := ValidateVisit(&models.VisitRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDoctorID)
	assert.ErrorIs(t, err, ErrMissingTimestamp)
}

func TestValidatePlanChange(t *testing.T) {
	require.NoError(t, ValidatePlanChange("plan-1", &models.PlanChange{Status: "active"}))

	err := ValidatePlanChange("", &models.PlanChange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPlanID)
	assert.ErrorIs(t, err, ErrEmptyChange)
}
