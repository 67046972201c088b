package repository

import (
	"context"
	"sync"

	"healthhub-directory/internal/domain/entity"
	domainRepo "healthhub-directory/internal/domain/repository"
)

type doctorRepository struct {
	mu          sync.RWMutex
	doctors     []entity.Doctor
	specialties []string
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) ReplaceAll(ctx context.Context, doctors []entity.Doctor) error {
	snapshot := append([]entity.Doctor(nil), doctors...)
	specialties := entity.DistinctSpecialities(snapshot)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors = snapshot
	r.specialties = specialties
	return nil
}

// FindAll returns a copy so callers may reorder it freely.
func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Doctor(nil), r.doctors...), nil
}

func (r *doctorRepository) Specialties(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.specialties...), nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doctors), nil
}
