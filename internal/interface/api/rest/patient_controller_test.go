package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"patient-manager-api/internal/application/ports"
	domain "patient-manager-api/internal/domain/patient"
	jwtSvc "patient-manager-api/internal/infrastructure/jwt"
	"patient-manager-api/internal/interface/api/rest/middleware"
)

type FakePatientService struct {
	CreateFunc     func(ctx context.Context, draft domain.Draft) error
	GetByIDFunc    func(ctx context.Context, id domain.ID) (*domain.Patient, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Patient, error)
	GetByDNIFunc   func(ctx context.Context, dni string) (*domain.Patient, error)
	GetByNameFunc  func(ctx context.Context, fragment string) (domain.Patients, error)
	ListFunc       func(ctx context.Context, page, size int) (*domain.Page, error)
	UpdateFunc     func(ctx context.Context, id domain.ID, draft domain.Draft) (*domain.Patient, error)
	DeleteFunc     func(ctx context.Context, id domain.ID) error
}

func (f *FakePatientService) Create(ctx context.Context, draft domain.Draft) error {
	if f.CreateFunc == nil {
		return errors.New("not used")
	}
	return f.CreateFunc(ctx, draft)
}
func (f *FakePatientService) GetByID(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	if f.GetByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetByIDFunc(ctx, id)
}
func (f *FakePatientService) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	if f.GetByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetByEmailFunc(ctx, email)
}
func (f *FakePatientService) GetByDNI(ctx context.Context, dni string) (*domain.Patient, error) {
	if f.GetByDNIFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetByDNIFunc(ctx, dni)
}
func (f *FakePatientService) GetByName(ctx context.Context, fragment string) (domain.Patients, error) {
	if f.GetByNameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetByNameFunc(ctx, fragment)
}
func (f *FakePatientService) List(ctx context.Context, page, size int) (*domain.Page, error) {
	if f.ListFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListFunc(ctx, page, size)
}
func (f *FakePatientService) Update(ctx context.Context, id domain.ID, draft domain.Draft) (*domain.Patient, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, draft)
}
func (f *FakePatientService) Delete(ctx context.Context, id domain.ID) error {
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}

func setupRouter(t *testing.T, ps ports.PatientService, withJWT bool) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	secret := "test-secret"
	j := jwtSvc.New(secret)

	pc := &PatientController{
		patientService: ps,
		logger:         logger,
	}

	register := func(auth gin.HandlerFunc) {
		r.POST(RoutePatientCreate, auth, pc.CreatePatientHandler)
		r.GET(RoutePatients, auth, pc.GetPatientsHandler)
		r.GET(RoutePatientByID, auth, pc.GetPatientByIDHandler)
		r.GET(RoutePatientByEmail, auth, pc.GetPatientByEmailHandler)
		r.GET(RoutePatientByDNI, auth, pc.GetPatientByDNIHandler)
		r.GET(RoutePatientsByName, auth, pc.GetPatientsByNameHandler)
		r.DELETE(RoutePatientDelete, auth, pc.DeletePatientHandler)
		r.PUT(RoutePatientUpdate, auth, pc.UpdatePatientHandler)
	}
	if withJWT {
		register(middleware.AuthMiddleware(j))
	} else {
		register(func(c *gin.Context) { c.Next() })
	}

	token, err := j.GenerateJWT("test-client", time.Hour)
	require.NoError(t, err)

	return r, token
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func somePatient() *domain.Patient {
	bd := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	return &domain.Patient{
		ID:        uuid.New(),
		Name:      "John Doe",
		Email:     "patient@example.com",
		Address:   "123 Main St",
		Phone:     "555-0100",
		DNI:       "12345678A",
		BirthDate: &bd,
	}
}

type envelope struct {
	Code      int      `json:"code"`
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Message   string   `json:"message"`
	Messages  []string `json:"messages"`
	Method    string   `json:"method"`
	Path      string   `json:"path"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestPatientController_Create(t *testing.T) {
	validBody := map[string]string{
		"name":    "John Doe",
		"email":   "patient@example.com",
		"address": "123 Main St",
		"dni":     "12345678A",
	}

	tests := []struct {
		name         string
		body         any
		mockPS       func() ports.PatientService
		wantStatus   int
		wantMessages []string
	}{
		{
			name: "201 on valid request",
			body: validBody,
			mockPS: func() ports.PatientService {
				return &FakePatientService{
					CreateFunc: func(ctx context.Context, draft domain.Draft) error {
						return nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "400 with all required messages",
			body: map[string]string{},
			mockPS: func() ports.PatientService {
				return &FakePatientService{
					CreateFunc: func(ctx context.Context, draft domain.Draft) error {
						return domain.NewValidation(
							"Name cannot be null or empty",
							"Email cannot be null or empty",
							"Address cannot be null or empty",
							"DNI cannot be null or empty",
						)
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantMessages: []string{
				"Name cannot be null or empty",
				"Email cannot be null or empty",
				"Address cannot be null or empty",
				"DNI cannot be null or empty",
			},
		},
		{
			name: "400 on duplicate email",
			body: validBody,
			mockPS: func() ports.PatientService {
				return &FakePatientService{
					CreateFunc: func(ctx context.Context, draft domain.Draft) error {
						return domain.NewValidation("Email already exists")
					},
				}
			},
			wantStatus:   http.StatusBadRequest,
			wantMessages: []string{"Email already exists"},
		},
		{
			name:       "400 on malformed json",
			body:       "{not json",
			mockPS:     func() ports.PatientService { return &FakePatientService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "500 on store failure",
			body: validBody,
			mockPS: func() ports.PatientService {
				return &FakePatientService{
					CreateFunc: func(ctx context.Context, draft domain.Draft) error {
						return errors.New("db down")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(t, tt.mockPS(), false)

			rr := doReq(t, r, http.MethodPost, RoutePatientCreate, tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessages != nil {
				env := decodeEnvelope(t, rr)
				assert.Equal(t, http.StatusBadRequest, env.Code)
				assert.Equal(t, "Bad Request", env.Status)
				assert.Equal(t, tt.wantMessages, env.Messages)
				assert.Equal(t, http.MethodPost, env.Method)
				assert.Equal(t, RoutePatientCreate, env.Path)
				assert.NotEmpty(t, env.Timestamp)
			}
		})
	}
}

func TestPatientController_GetByID(t *testing.T) {
	p := somePatient()

	t.Run("200 with dd-MM-yyyy birth date", func(t *testing.T) {
		ps := &FakePatientService{
			GetByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Patient, error) {
				assert.Equal(t, p.ID, id)
				return p, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/id/"+p.ID.String(), nil, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, p.ID.String(), got["id"])
		assert.Equal(t, "John Doe", got["name"])
		assert.Equal(t, "20-05-1990", got["birthDate"])
	})

	t.Run("404 with documented message", func(t *testing.T) {
		id := uuid.New()
		ps := &FakePatientService{
			GetByIDFunc: func(ctx context.Context, gotID domain.ID) (*domain.Patient, error) {
				return nil, domain.NewNotFound("Patient not found with ID: " + gotID.String())
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/id/"+id.String(), nil, nil)

		require.Equal(t, http.StatusNotFound, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, http.StatusNotFound, env.Code)
		assert.Equal(t, "Not Found", env.Status)
		assert.Equal(t, "Patient not found with ID: "+id.String(), env.Message)
		assert.Equal(t, http.MethodGet, env.Method)
	})

	t.Run("400 on malformed uuid", func(t *testing.T) {
		r, _ := setupRouter(t, &FakePatientService{}, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/id/not-a-uuid", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPatientController_List(t *testing.T) {
	t.Run("200 with page payload", func(t *testing.T) {
		p := somePatient()
		ps := &FakePatientService{
			ListFunc: func(ctx context.Context, page, size int) (*domain.Page, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, size)
				return &domain.Page{Page: page, Size: size, TotalElements: 11, Content: domain.Patients{p}}, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"?page=2&size=5", nil, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var got struct {
			Content       []map[string]any `json:"content"`
			Page          int              `json:"page"`
			Size          int              `json:"size"`
			TotalElements int64            `json:"totalElements"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got.Content, 1)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, int64(11), got.TotalElements)
	})

	t.Run("204 on empty page with defaults", func(t *testing.T) {
		ps := &FakePatientService{
			ListFunc: func(ctx context.Context, page, size int) (*domain.Page, error) {
				assert.Equal(t, 0, page)
				assert.Equal(t, 10, size)
				return &domain.Page{Page: page, Size: size}, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients, nil, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
	})

	t.Run("400 on bad paging", func(t *testing.T) {
		r, _ := setupRouter(t, &FakePatientService{}, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"?page=-1", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPatientController_GetByEmailAndDNI(t *testing.T) {
	p := somePatient()

	t.Run("200 by email", func(t *testing.T) {
		ps := &FakePatientService{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.Patient, error) {
				assert.Equal(t, p.Email, email)
				return p, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/email/"+p.Email, nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("404 by dni", func(t *testing.T) {
		ps := &FakePatientService{
			GetByDNIFunc: func(ctx context.Context, dni string) (*domain.Patient, error) {
				return nil, domain.NewNotFound("Patient not found with DNI: " + dni)
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/dni/00000000X", nil, nil)

		require.Equal(t, http.StatusNotFound, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Patient not found with DNI: 00000000X", env.Message)
	})
}

func TestPatientController_GetByName(t *testing.T) {
	t.Run("200 with matches", func(t *testing.T) {
		p := somePatient()
		ps := &FakePatientService{
			GetByNameFunc: func(ctx context.Context, fragment string) (domain.Patients, error) {
				assert.Equal(t, "john", fragment)
				return domain.Patients{p}, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/name/john", nil, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "John Doe", got[0]["name"])
	})

	t.Run("204 without matches", func(t *testing.T) {
		ps := &FakePatientService{
			GetByNameFunc: func(ctx context.Context, fragment string) (domain.Patients, error) {
				return nil, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodGet, RoutePatients+"/name/zzz", nil, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestPatientController_Delete(t *testing.T) {
	t.Run("204 on success", func(t *testing.T) {
		id := uuid.New()
		ps := &FakePatientService{
			DeleteFunc: func(ctx context.Context, gotID domain.ID) error {
				assert.Equal(t, id, gotID)
				return nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodDelete, RoutePatients+"/delete/"+id.String(), nil, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("404 when missing", func(t *testing.T) {
		id := uuid.New()
		ps := &FakePatientService{
			DeleteFunc: func(ctx context.Context, gotID domain.ID) error {
				return domain.NewNotFound("Patient not found with ID: " + gotID.String())
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodDelete, RoutePatients+"/delete/"+id.String(), nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPatientController_Update(t *testing.T) {
	t.Run("200 with updated body", func(t *testing.T) {
		p := somePatient()
		ps := &FakePatientService{
			UpdateFunc: func(ctx context.Context, id domain.ID, draft domain.Draft) (*domain.Patient, error) {
				assert.Equal(t, p.ID, id)
				assert.Equal(t, "555-0100", draft.Phone)
				assert.Empty(t, draft.Name)
				return p, nil
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodPut, RoutePatients+"/update/"+p.ID.String(),
			map[string]string{"phone": "555-0100"}, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "555-0100", got["phone"])
		assert.Equal(t, "John Doe", got["name"])
	})

	t.Run("400 on validation failure", func(t *testing.T) {
		id := uuid.New()
		ps := &FakePatientService{
			UpdateFunc: func(ctx context.Context, gotID domain.ID, draft domain.Draft) (*domain.Patient, error) {
				return nil, domain.NewValidation("Email is in use by another patient")
			},
		}
		r, _ := setupRouter(t, ps, false)

		rr := doReq(t, r, http.MethodPut, RoutePatients+"/update/"+id.String(),
			map[string]string{"email": "jane@example.com"}, nil)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, []string{"Email is in use by another patient"}, env.Messages)
	})

	t.Run("400 on bad birth date", func(t *testing.T) {
		r, _ := setupRouter(t, &FakePatientService{}, false)

		rr := doReq(t, r, http.MethodPut, RoutePatients+"/update/"+uuid.NewString(),
			map[string]string{"birthDate": "20-05-1990"}, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPatientController_RequiresBearer(t *testing.T) {
	ps := &FakePatientService{
		GetByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Patient, error) {
			return somePatient(), nil
		},
	}
	r, token := setupRouter(t, ps, true)
	path := RoutePatients + "/id/" + uuid.NewString()

	t.Run("401 without token", func(t *testing.T) {
		rr := doReq(t, r, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("401 with garbage token", func(t *testing.T) {
		rr := doReq(t, r, http.MethodGet, path, nil, map[string]string{
			"Authorization": "Bearer garbage",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("200 with valid token", func(t *testing.T) {
		rr := doReq(t, r, http.MethodGet, path, nil, map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", token),
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
