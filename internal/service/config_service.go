package service

import (
	"balneario/internal/entities"
	apperrors "balneario/internal/errors"
	"balneario/internal/repository"
	"balneario/internal/utils"
)

// ConfigService exposes the per-service capacity configuration of an
// establishment: the offered flag plus the unit count (people for pileta).
type ConfigService struct {
	Repo *repository.CapacityRepository
}

func NewConfigService(repo *repository.CapacityRepository) *ConfigService {
	return &ConfigService{Repo: repo}
}

// ListServices returns one entry per known service type; unconfigured
// services show as not offered with zero capacity.
func (s *ConfigService) ListServices(establishmentID int) ([]entities.ServiceConfigResponse, error) {
	configured, err := s.Repo.GetCapacities(establishmentID)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]entities.ServiceConfigResponse, len(configured))
	for _, svc := range configured {
		byType[svc.ServiceType] = entities.ServiceConfigResponse{
			ServiceType: svc.ServiceType,
			Offered:     svc.Offered,
			Capacity:    svc.Capacity,
		}
	}
	out := make([]entities.ServiceConfigResponse, 0, len(utils.AllServiceTypes))
	for _, serviceType := range utils.AllServiceTypes {
		if svc, ok := byType[serviceType]; ok {
			out = append(out, svc)
		} else {
			out = append(out, entities.ServiceConfigResponse{ServiceType: serviceType})
		}
	}
	return out, nil
}

func (s *ConfigService) UpdateService(establishmentID int, serviceType string, offered bool, capacity int) error {
	if !utils.IsKnownServiceType(serviceType) {
		return apperrors.ErrInvalidService
	}
	if capacity < 0 {
		capacity = 0
	}
	return s.Repo.UpdateCapacity(establishmentID, serviceType, offered, capacity)
}
