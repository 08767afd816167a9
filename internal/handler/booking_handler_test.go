package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/middleware"
	"beautybook/internal/models"
	"beautybook/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setUserID simulates the auth middleware having validated a token.
func setUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	}
}

func TestNewBookingHandler(t *testing.T) {
	mockService := &mocks.MockBookingService{}
	handler := NewBookingHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	userID := primitive.NewObjectID()
	pkgID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		packageID      string
		mockSetup      func(*mocks.MockBookingService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "successful booking",
			userID:    userID.Hex(),
			packageID: pkgID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.CreateBookingFunc = func(ctx context.Context, uid, pid string) (*models.Booking, error) {
					assert.Equal(t, userID.Hex(), uid)
					assert.Equal(t, pkgID.Hex(), pid)
					return &models.Booking{
						ID:        bookingID,
						PackageID: pkgID,
						UserID:    userID,
						CreatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, bookingID.Hex(), data["id"])
				assert.Equal(t, pkgID.Hex(), data["packageId"])
			},
		},
		{
			name:           "not authenticated",
			userID:         "",
			packageID:      pkgID.Hex(),
			mockSetup:      func(m *mocks.MockBookingService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "package not found",
			userID:    userID.Hex(),
			packageID: primitive.NewObjectID().Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.CreateBookingFunc = func(ctx context.Context, uid, pid string) (*models.Booking, error) {
					return nil, apperrors.ErrPackageNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "already booked",
			userID:    userID.Hex(),
			packageID: pkgID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.CreateBookingFunc = func(ctx context.Context, uid, pid string) (*models.Booking, error) {
					return nil, apperrors.ErrAlreadyBooked
				}
			},
			expectedStatus: http.StatusForbidden,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "beauty package already booked", resp["error"])
			},
		},
		{
			name:      "unknown user in token",
			userID:    userID.Hex(),
			packageID: pkgID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.CreateBookingFunc = func(ctx context.Context, uid, pid string) (*models.Booking, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "internal server error",
			userID:    userID.Hex(),
			packageID: pkgID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.CreateBookingFunc = func(ctx context.Context, uid, pid string) (*models.Booking, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBookingService{}
			tt.mockSetup(mockService)

			handler := NewBookingHandler(mockService)

			router := gin.New()
			router.POST("/bookings/:id", setUserID(tt.userID), handler.CreateBooking)

			req := httptest.NewRequest(http.MethodPost, "/bookings/"+tt.packageID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBookingHandler_GetBooking(t *testing.T) {
	bookingID := primitive.NewObjectID()

	tests := []struct {
		name           string
		bookingID      string
		mockSetup      func(*mocks.MockBookingService)
		expectedStatus int
	}{
		{
			name:      "successful get",
			bookingID: bookingID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.GetBookingFunc = func(ctx context.Context, id string) (*models.Booking, error) {
					return &models.Booking{ID: bookingID}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "booking not found",
			bookingID: primitive.NewObjectID().Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.GetBookingFunc = func(ctx context.Context, id string) (*models.Booking, error) {
					return nil, apperrors.ErrBookingNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "internal server error",
			bookingID: bookingID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.GetBookingFunc = func(ctx context.Context, id string) (*models.Booking, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBookingService{}
			tt.mockSetup(mockService)

			handler := NewBookingHandler(mockService)

			router := gin.New()
			router.GET("/bookings/:id", handler.GetBooking)

			req := httptest.NewRequest(http.MethodGet, "/bookings/"+tt.bookingID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookingHandler_ListBookings(t *testing.T) {
	bookingID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockBookingService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:  "successful list with details",
			query: "",
			mockSetup: func(m *mocks.MockBookingService) {
				m.ListBookingsFunc = func(ctx context.Context, page, pageSize int) (*models.BookingListResponse, error) {
					assert.Equal(t, 1, page)
					assert.Equal(t, 10, pageSize)
					return &models.BookingListResponse{
						Items: []models.BookingDetails{
							{
								ID:            bookingID,
								BeautyPackage: models.BeautyPackage{Title: "Deluxe Facial"},
								User:          models.User{Name: "Alice Johnson"},
								CreatedAt:     now,
							},
						},
						Pagination: models.Pagination{Page: 1, PageSize: 10, TotalItems: 1, TotalPages: 1},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				items := data["items"].([]interface{})
				assert.Len(t, items, 1)
				first := items[0].(map[string]interface{})
				pkg := first["beautyPackage"].(map[string]interface{})
				assert.Equal(t, "Deluxe Facial", pkg["title"])
				user := first["user"].(map[string]interface{})
				assert.Equal(t, "Alice Johnson", user["name"])
			},
		},
		{
			name:  "service error",
			query: "",
			mockSetup: func(m *mocks.MockBookingService) {
				m.ListBookingsFunc = func(ctx context.Context, page, pageSize int) (*models.BookingListResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBookingService{}
			tt.mockSetup(mockService)

			handler := NewBookingHandler(mockService)

			router := gin.New()
			router.GET("/bookings", handler.ListBookings)

			req := httptest.NewRequest(http.MethodGet, "/bookings"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBookingHandler_DeleteBooking(t *testing.T) {
	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	tests := []struct {
		name           string
		userID         string
		bookingID      string
		mockSetup      func(*mocks.MockBookingService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "successful delete",
			userID:    userID.Hex(),
			bookingID: bookingID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.DeleteBookingFunc = func(ctx context.Context, uid, bid string) (*models.Booking, error) {
					assert.Equal(t, userID.Hex(), uid)
					assert.Equal(t, bookingID.Hex(), bid)
					return &models.Booking{ID: bookingID, UserID: userID}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not authenticated",
			userID:         "",
			bookingID:      bookingID.Hex(),
			mockSetup:      func(m *mocks.MockBookingService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "malformed booking id",
			userID:    userID.Hex(),
			bookingID: "not-a-hex-id",
			mockSetup: func(m *mocks.MockBookingService) {
				m.DeleteBookingFunc = func(ctx context.Context, uid, bid string) (*models.Booking, error) {
					return nil, apperrors.ErrBookingNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "booking owned by someone else",
			userID:    userID.Hex(),
			bookingID: bookingID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.DeleteBookingFunc = func(ctx context.Context, uid, bid string) (*models.Booking, error) {
					return nil, apperrors.ErrBookingMissing
				}
			},
			expectedStatus: http.StatusForbidden,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				// The ownership failure is masked as a missing booking
				assert.Equal(t, "booking doesn't exist", resp["error"])
			},
		},
		{
			name:      "internal server error",
			userID:    userID.Hex(),
			bookingID: bookingID.Hex(),
			mockSetup: func(m *mocks.MockBookingService) {
				m.DeleteBookingFunc = func(ctx context.Context, uid, bid string) (*models.Booking, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBookingService{}
			tt.mockSetup(mockService)

			handler := NewBookingHandler(mockService)

			router := gin.New()
			router.DELETE("/bookings/:id", setUserID(tt.userID), handler.DeleteBooking)

			req := httptest.NewRequest(http.MethodDelete, "/bookings/"+tt.bookingID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
