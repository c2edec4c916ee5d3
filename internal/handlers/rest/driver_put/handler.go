package driver_put

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
	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID:                &driverUpdateDTO.ID,
		FullName:          driverUpdateDTO.FullName,
		Phone:             driverUpdateDTO.Phone,
		Email:             driverUpdateDTO.Email,
		LicenseNumber:     driverUpdateDTO.LicenseNumber,
		LicenseExpiryDate: driverUpdateDTO.LicenseExpiryDate,
		IsLicenseValid:    driverUpdateDTO.IsLicenseValid,
		SafetyScore:       driverUpdateDTO.SafetyScore,
	}

	// Опциональные параметры
	if driverUpdateDTO.LicenseType != nil {
		licenseType := entities.VehicleType(*driverUpdateDTO.LicenseType)
		driverModifyEntity.LicenseType = &licenseType
	}
	if driverUpdateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverUpdateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
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
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDriver(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
