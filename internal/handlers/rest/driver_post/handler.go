package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/driver"
	"fleetops/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	licenseType := entities.VehicleType(driverCreateDTO.LicenseType)
	driverModifyEntity := entities.DriverModify{
		FullName:          &driverCreateDTO.FullName,
		Phone:             &driverCreateDTO.Phone,
		Email:             driverCreateDTO.Email,
		LicenseNumber:     &driverCreateDTO.LicenseNumber,
		LicenseType:       &licenseType,
		LicenseExpiryDate: &driverCreateDTO.LicenseExpiryDate,
		SafetyScore:       driverCreateDTO.SafetyScore,
	}
	if driverCreateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverCreateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidLicenseNumber),
			errors.Is(err, driver.ErrInvalidLicenseType),
			errors.Is(err, driver.ErrInvalidStatus),
			errors.Is(err, driver.ErrInvalidSafetyScore):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
