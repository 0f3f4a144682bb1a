package controllers

import (
	"context"
	"errors"
	"net/http"

	"HealthHubIPD/models"
	"HealthHubIPD/services"
	"HealthHubIPD/store"

	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

type AdmissionService interface {
	CreateAdmission(ctx context.Context, patientId string) (*models.AdmissionResult, error)
	FetchAdmission(ctx context.Context, admissionId string) (*models.Admission, error)
}

type RosterService interface {
	Today(ctx context.Context) ([]models.WardRoster, error)
}

type AdmissionController struct {
	admissions AdmissionService
	rosters    RosterService
}

func NewAdmissionController(admissions AdmissionService, rosters RosterService) *AdmissionController {
	return &AdmissionController{admissions: admissions, rosters: rosters}
}

func Admission(router *gin.Engine, ctrl *AdmissionController) {
	ipd := router.Group("/ipd")
	ipd.POST("/admission/create/:patientId", ctrl.CreateAdmission)
	ipd.GET("/admission/fetch/:admissionId", ctrl.FetchAdmission)
	ipd.GET("/roster/today", ctrl.TodayRoster)
}

/*
* Get patientId from params
* Pass to the service
* Business failures come back as a result with error=true and status 200
 */
func (ctrl *AdmissionController) CreateAdmission(c *gin.Context) {
	patientId := c.Param("patientId")
	result, err := ctrl.admissions.CreateAdmission(c.Request.Context(), patientId)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *AdmissionController) FetchAdmission(c *gin.Context) {
	admissionId := c.Param("admissionId")
	admission, err := ctrl.admissions.FetchAdmission(c.Request.Context(), admissionId)
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(admission))
}

func (ctrl *AdmissionController) TodayRoster(c *gin.Context) {
	rosters, err := ctrl.rosters.Today(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(rosters))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidPatientID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAdmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateAdmission):
		return http.StatusConflict
	case errors.Is(err, services.ErrMalformedPatientRecord):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrDataStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
