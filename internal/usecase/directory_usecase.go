package usecase

import (
	"context"

	"healthhub-directory/internal/converter"
	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/domain/repository"
	"healthhub-directory/internal/service"

	"github.com/sirupsen/logrus"
)

// LoadStatusReader reports the state of the one-shot directory fetch.
type LoadStatusReader interface {
	Status() service.LoadStatus
}

type DirectoryUsecase interface {
	Status(ctx context.Context) (*dto.DirectoryStatusResponse, error)
	ListDoctors(ctx context.Context, filters entity.FilterState) (*dto.DirectoryResponse, error)
	Suggest(ctx context.Context, input string) (*dto.SuggestionListResponse, error)
	Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type directoryUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	loader      LoadStatusReader
	placeholder string
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	loader LoadStatusReader,
	placeholder string,
) DirectoryUsecase {
	return &directoryUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		loader:      loader,
		placeholder: placeholder,
	}
}

func (u *directoryUsecase) Status(ctx context.Context) (*dto.DirectoryStatusResponse, error) {
	count, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	specialties, err := u.doctorRepo.Specialties(ctx)
	if err != nil {
		u.log.Warnf("Failed to read specialties: %+v", err)
		return nil, err
	}

	status := u.loader.Status()
	return &dto.DirectoryStatusResponse{
		Status:      string(status),
		Loading:     status == service.StatusLoading,
		Doctors:     count,
		Specialties: len(specialties),
	}, nil
}

func (u *directoryUsecase) ListDoctors(ctx context.Context, filters entity.FilterState) (*dto.DirectoryResponse, error) {
	view, err := buildView(ctx, u.doctorRepo, u.loader, filters, u.placeholder)
	if err != nil {
		u.log.Warnf("Failed to build directory view: %+v", err)
		return nil, err
	}
	return converter.DirectoryToResponse(view), nil
}

func (u *directoryUsecase) Suggest(ctx context.Context, input string) (*dto.SuggestionListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToSuggestions(Suggest(doctors, input), u.placeholder), nil
}

func (u *directoryUsecase) Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.doctorRepo.Specialties(ctx)
	if err != nil {
		u.log.Warnf("Failed to read specialties: %+v", err)
		return nil, err
	}
	if specialties == nil {
		specialties = []string{}
	}
	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}

// buildView runs the filter engine over the current snapshot.
func buildView(
	ctx context.Context,
	doctorRepo repository.DoctorRepository,
	loader LoadStatusReader,
	filters entity.FilterState,
	placeholder string,
) (converter.DirectoryView, error) {
	doctors, err := doctorRepo.FindAll(ctx)
	if err != nil {
		return converter.DirectoryView{}, err
	}
	specialties, err := doctorRepo.Specialties(ctx)
	if err != nil {
		return converter.DirectoryView{}, err
	}

	status := loader.Status()
	return converter.DirectoryView{
		Status:      string(status),
		Loading:     status == service.StatusLoading,
		Results:     ApplyFilters(doctors, filters),
		Filters:     filters,
		Specialties: specialties,
		Placeholder: placeholder,
	}, nil
}
