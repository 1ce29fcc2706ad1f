package contracts

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

type DoctorRepository interface {
	FindAll(ctx context.Context, clinicID, name string) ([]models.Doctor, error)
	FindByID(ctx context.Context, clinicID, doctorID string) (*models.Doctor, error)
	Upsert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	Delete(ctx context.Context, clinicID, doctorID string) (bool, error)
	UpdateAvatar(ctx context.Context, clinicID, doctorID, avatarImageURL string) (*models.Doctor, error)
	FindAvailabilities(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
	UpsertAvailability(ctx context.Context, availability *models.DoctorAvailability) (*models.DoctorAvailability, error)
}

type DoctorUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.FindDoctors) ([]responses.Doctor, error)
	Upsert(ctx context.Context, session *models.Session, request *requests.UpsertDoctor) (*responses.Doctor, error)
	Delete(ctx context.Context, session *models.Session, doctorID string) error
	FindAvailabilities(ctx context.Context, session *models.Session, doctorID string) ([]responses.DoctorAvailability, error)
	UpsertAvailability(ctx context.Context, session *models.Session, request *requests.UpsertDoctorAvailability) (*responses.DoctorAvailability, error)
	UploadAvatar(ctx context.Context, session *models.Session, request *requests.UploadDoctorAvatar) (*responses.Doctor, error)
	FindAvailableTimes(ctx context.Context, session *models.Session, request *requests.FindAvailableTimes) ([]responses.AvailableTime, error)
}
