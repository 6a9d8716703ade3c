package tests

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "canteen-pos/internal/api/http"
	"canteen-pos/internal/domain"
	"canteen-pos/internal/mocks"
	"canteen-pos/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(menu *mocks.MenuServiceInterface, orders *mocks.OrderServiceInterface, reports *mocks.ReportServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Menu: menu, Orders: orders, Reports: reports}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_createOrder(t *testing.T) {
	mockOrders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(nil, mockOrders, nil)

	savedOrder := &domain.Order{
		ID:          42,
		Status:      domain.OrderStatusCompleted,
		TotalAmount: decimal.RequireFromString("331.00"),
		CreatedAt:   fixedNow,
		Items: []domain.OrderItem{
			{ID: 1, DishID: 1, DishName: "Борщ", Quantity: 2, Price: decimal.RequireFromString("120.50"), ItemTotal: decimal.RequireFromString("241.00")},
			{ID: 2, DishID: 2, DishName: "Чай", Quantity: 3, Price: decimal.RequireFromString("30.00"), ItemTotal: decimal.RequireFromString("90.00")},
		},
	}

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"items":[{"dish_id":1,"quantity":2},{"dish_id":2,"quantity":3}]}`,
			prepareMocks: func() {
				mockOrders.On("Create", mock.Anything, []domain.OrderItemInput{
					{DishID: 1, Quantity: 2},
					{DishID: 2, Quantity: 3},
				}).Return(savedOrder, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"total_amount":"331"`,
		},
		{
			name:         "invalid_json",
			payload:      `not json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "empty_items",
			payload: `{"items":[]}`,
			prepareMocks: func() {
				mockOrders.On("Create", mock.Anything, []domain.OrderItemInput{}).
					Return(nil, service.ErrEmptyOrder).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_dish",
			payload: `{"items":[{"dish_id":77,"quantity":1}]}`,
			prepareMocks: func() {
				mockOrders.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: dish 77", domain.ErrDishNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "unavailable_dish",
			payload: `{"items":[{"dish_id":1,"quantity":1}]}`,
			prepareMocks: func() {
				mockOrders.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: dish 1", domain.ErrDishUnavailable)).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getOrder(t *testing.T) {
	mockOrders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(nil, mockOrders, nil)

	t.Run("found", func(t *testing.T) {
		mockOrders.On("Get", 42).Return(&domain.Order{
			ID:          42,
			Status:      domain.OrderStatusCompleted,
			TotalAmount: decimal.RequireFromString("331.00"),
			Items:       []domain.OrderItem{},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/orders/42", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":42`)
	})

	t.Run("not_found", func(t *testing.T) {
		mockOrders.On("Get", 99).Return(nil, domain.ErrOrderNotFound).Once()

		req := httptest.NewRequest("GET", "/api/orders/99", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("check_alias", func(t *testing.T) {
		mockOrders.On("Get", 42).Return(&domain.Order{ID: 42, Items: []domain.OrderItem{}}, nil).Once()

		req := httptest.NewRequest("GET", "/api/check/42", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_getOrders(t *testing.T) {
	mockOrders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(nil, mockOrders, nil)

	t.Run("date_range", func(t *testing.T) {
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
		mockOrders.On("List", &from, &to).Return([]domain.OrderSummary{
			{OrderID: 1, Date: "01.03.2025", Time: "12:30", TotalAmount: decimal.RequireFromString("331.00"), ItemCount: 2},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/orders?start_date=2025-03-01&end_date=2025-03-07", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "01.03.2025")
	})

	t.Run("malformed_date", func(t *testing.T) {
		freshOrders := mocks.NewOrderServiceInterface(t)
		freshRouter := setupTestRouter(nil, freshOrders, nil)

		req := httptest.NewRequest("GET", "/api/orders?start_date=01.03.2025", nil)
		recorder := httptest.NewRecorder()
		freshRouter.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		freshOrders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("today_route_wins_over_id", func(t *testing.T) {
		mockOrders.On("List", mock.Anything, mock.Anything).Return([]domain.OrderSummary{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/orders/today", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockOrders.AssertNotCalled(t, "Get", mock.Anything)
	})
}

func TestHandler_deleteOrder(t *testing.T) {
	mockOrders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(nil, mockOrders, nil)

	mockOrders.On("Delete", 42).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/orders/42", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_getOrderQRCode(t *testing.T) {
	mockOrders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(nil, mockOrders, nil)

	mockOrders.On("ReceiptQR", 42).Return([]byte("png-bytes"), nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/42/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, []byte("png-bytes"), recorder.Body.Bytes())
}

func TestHandler_createDish(t *testing.T) {
	mockMenu := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockMenu, nil, nil)

	t.Run("available_by_default", func(t *testing.T) {
		mockMenu.On("CreateDish", mock.MatchedBy(func(dish *domain.Dish) bool {
			return dish.Name == "Борщ" && dish.IsAvailable
		})).Return(nil).Once()

		payload := `{"category_id":1,"name":"Борщ","price":"120.50"}`
		req := httptest.NewRequest("POST", "/api/dishes", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("invalid_price", func(t *testing.T) {
		mockMenu.On("CreateDish", mock.Anything).Return(service.ErrInvalidPrice).Once()

		payload := `{"category_id":1,"name":"Борщ","price":"0"}`
		req := httptest.NewRequest("POST", "/api/dishes", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_deleteDish(t *testing.T) {
	mockMenu := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockMenu, nil, nil)

	tests := []struct {
		name         string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			prepareMocks: func() {
				mockMenu.On("DeleteDish", 5).Return(nil).Once()
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "referenced_by_orders",
			prepareMocks: func() {
				mockMenu.On("DeleteDish", 5).Return(&domain.ConflictError{
					Msg: "cannot delete dish: it appears in 3 order items",
				}).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: "3 order items",
		},
		{
			name: "not_found",
			prepareMocks: func() {
				mockMenu.On("DeleteDish", 5).Return(domain.ErrDishNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("DELETE", "/api/dishes/5", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getMenu(t *testing.T) {
	mockMenu := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockMenu, nil, nil)

	mockMenu.On("Menu").Return(map[string][]domain.MenuDish{
		"Напитки": {{Dish: domain.Dish{ID: 2, Name: "Чай", Price: decimal.RequireFromString("30.00")}, CategoryName: "Напитки"}},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/menu", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Напитки")
}

func TestHandler_getDailyReport(t *testing.T) {
	mockReports := mocks.NewReportServiceInterface(t)
	router := setupTestRouter(nil, nil, mockReports)

	t.Run("explicit_date", func(t *testing.T) {
		day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		mockReports.On("Daily", day).Return(&domain.DailyReport{
			Date:         "2025-03-01",
			OrdersCount:  2,
			DailyTotal:   decimal.RequireFromString("331.00"),
			AverageOrder: decimal.RequireFromString("165.50"),
			Orders:       []domain.DailyOrder{},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/reports/daily?date=2025-03-01", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"orders_count":2`)
	})

	t.Run("malformed_date", func(t *testing.T) {
		freshReports := mocks.NewReportServiceInterface(t)
		freshRouter := setupTestRouter(nil, nil, freshReports)

		req := httptest.NewRequest("GET", "/api/reports/daily?date=yesterday", nil)
		recorder := httptest.NewRecorder()
		freshRouter.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		freshReports.AssertNotCalled(t, "Daily", mock.Anything)
	})
}

func TestHandler_getCategoryReport(t *testing.T) {
	mockReports := mocks.NewReportServiceInterface(t)
	router := setupTestRouter(nil, nil, mockReports)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	mockReports.On("ByCategory", start, end).Return(&domain.CategoryReport{
		Period:      domain.ReportPeriod{Start: "2025-03-01", End: "2025-03-07"},
		TotalAmount: decimal.RequireFromString("331.00"),
		Categories: []domain.CategorySales{
			{Category: "Горячее", Quantity: 2, Amount: decimal.RequireFromString("241.00"), Percentage: 72.8},
		},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/reports/by-category?start_date=2025-03-01&end_date=2025-03-07", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"percentage":72.8`)
}

func TestHandler_getPopularDishes(t *testing.T) {
	mockReports := mocks.NewReportServiceInterface(t)
	router := setupTestRouter(nil, nil, mockReports)

	t.Run("default_limit", func(t *testing.T) {
		mockReports.On("Popular", mock.Anything, (*time.Time)(nil), (*time.Time)(nil), 10).
			Return([]domain.PopularDish{
				{Dish: "Борщ", Category: "Горячее", Sold: 5, Revenue: decimal.RequireFromString("602.50")},
			}, nil).Once()

		req := httptest.NewRequest("GET", "/api/reports/popular-dishes", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Борщ")
	})

	t.Run("limit_out_of_range", func(t *testing.T) {
		mockReports.On("Popular", mock.Anything, (*time.Time)(nil), (*time.Time)(nil), 99).
			Return(nil, service.ErrInvalidLimit).Once()

		req := httptest.NewRequest("GET", "/api/reports/popular-dishes?limit=99", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("limit_not_a_number", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reports/popular-dishes?limit=many", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
