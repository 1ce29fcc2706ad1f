package contracts

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	FindAll(ctx context.Context, clinicID, name string) ([]models.Patient, error)
	FindByID(ctx context.Context, clinicID, patientID string) (*models.Patient, error)
	Upsert(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Delete(ctx context.Context, clinicID, patientID string) (bool, error)
}

type PatientUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.FindPatients) ([]responses.Patient, error)
	Upsert(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*responses.Patient, error)
	Delete(ctx context.Context, session *models.Session, patientID string) error
	FindHistory(ctx context.Context, session *models.Session, patientID string) ([]responses.Appointment, error)
}
