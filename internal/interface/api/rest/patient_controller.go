package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"patient-manager-api/internal/application/ports"
	domain "patient-manager-api/internal/domain/patient"
	"patient-manager-api/internal/infrastructure/jwt"
	"patient-manager-api/internal/interface/api/rest/dto/apierror"
	"patient-manager-api/internal/interface/api/rest/dto/patient"
	"patient-manager-api/internal/interface/api/rest/middleware"
	"patient-manager-api/internal/interface/api/rest/validator"
)

type PatientController struct {
	patientService ports.PatientService
	logger         *zap.Logger
}

func NewPatientController(
	r *gin.Engine,
	patientService ports.PatientService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PatientController {
	pc := &PatientController{
		patientService: patientService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.POST(RoutePatientCreate, auth, pc.CreatePatientHandler)
	r.GET(RoutePatients, auth, pc.GetPatientsHandler)
	r.GET(RoutePatientByID, auth, pc.GetPatientByIDHandler)
	r.GET(RoutePatientByEmail, auth, pc.GetPatientByEmailHandler)
	r.GET(RoutePatientByDNI, auth, pc.GetPatientByDNIHandler)
	r.GET(RoutePatientsByName, auth, pc.GetPatientsByNameHandler)
	r.DELETE(RoutePatientDelete, auth, pc.DeletePatientHandler)
	r.PUT(RoutePatientUpdate, auth, pc.UpdatePatientHandler)

	return pc
}

// renderFailure maps the service's typed failures onto the error
// envelopes; anything untyped is a store failure and stays opaque.
func (pc *PatientController) renderFailure(c *gin.Context, op string, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, apierror.NewMulti(
			http.StatusBadRequest, validationErr.Messages, c.Request.Method, c.Request.URL.Path,
		))
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, apierror.New(
			http.StatusNotFound, notFoundErr.Message, c.Request.Method, c.Request.URL.Path,
		))
	default:
		pc.logger.Error(op+" error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierror.New(
			http.StatusInternalServerError, "internal server error", c.Request.Method, c.Request.URL.Path,
		))
	}
}

func (pc *PatientController) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierror.New(
		http.StatusBadRequest, message, c.Request.Method, c.Request.URL.Path,
	))
}

func (pc *PatientController) bindDraft(c *gin.Context) (domain.Draft, bool) {
	var req patient.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.badRequest(c, "invalid request body")
		return domain.Draft{}, false
	}

	draft, err := patient.ToDraft(req)
	if err != nil {
		pc.badRequest(c, err.Error())
		return domain.Draft{}, false
	}

	return draft, true
}

func (pc *PatientController) CreatePatientHandler(c *gin.Context) {
	draft, ok := pc.bindDraft(c)
	if !ok {
		return
	}

	if err := pc.patientService.Create(c.Request.Context(), draft); err != nil {
		pc.renderFailure(c, "Create()", err)
		return
	}

	c.Status(http.StatusCreated)
}

func (pc *PatientController) GetPatientsHandler(c *gin.Context) {
	page, size, err := validator.ValidatePaging(c.Query("page"), c.Query("size"))
	if err != nil {
		pc.badRequest(c, err.Error())
		return
	}

	result, err := pc.patientService.List(c.Request.Context(), page, size)
	if err != nil {
		pc.renderFailure(c, "List()", err)
		return
	}

	if len(result.Content) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, patient.ToPageResponse(*result))
}

func (pc *PatientController) GetPatientByIDHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		pc.badRequest(c, "id must be a valid UUID")
		return
	}

	p, err := pc.patientService.GetByID(c.Request.Context(), id)
	if err != nil {
		pc.renderFailure(c, "GetByID()", err)
		return
	}

	c.JSON(http.StatusOK, patient.ToResponse(*p))
}

func (pc *PatientController) GetPatientByEmailHandler(c *gin.Context) {
	p, err := pc.patientService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		pc.renderFailure(c, "GetByEmail()", err)
		return
	}

	c.JSON(http.StatusOK, patient.ToResponse(*p))
}

func (pc *PatientController) GetPatientByDNIHandler(c *gin.Context) {
	p, err := pc.patientService.GetByDNI(c.Request.Context(), c.Param("dni"))
	if err != nil {
		pc.renderFailure(c, "GetByDNI()", err)
		return
	}

	c.JSON(http.StatusOK, patient.ToResponse(*p))
}

func (pc *PatientController) GetPatientsByNameHandler(c *gin.Context) {
	ps, err := pc.patientService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		pc.renderFailure(c, "GetByName()", err)
		return
	}

	if len(ps) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, patient.ToResponses(ps))
}

func (pc *PatientController) DeletePatientHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		pc.badRequest(c, "id must be a valid UUID")
		return
	}

	if err := pc.patientService.Delete(c.Request.Context(), id); err != nil {
		pc.renderFailure(c, "Delete()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PatientController) UpdatePatientHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		pc.badRequest(c, "id must be a valid UUID")
		return
	}

	draft, okBody := pc.bindDraft(c)
	if !okBody {
		return
	}

	p, err := pc.patientService.Update(c.Request.Context(), id, draft)
	if err != nil {
		pc.renderFailure(c, "Update()", err)
		return
	}

	c.JSON(http.StatusOK, patient.ToResponse(*p))
}
