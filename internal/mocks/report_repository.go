package mocks

import (
	"time"

	"canteen-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ReportRepository struct {
	mock.Mock
}

func NewReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportRepository {
	m := &ReportRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReportRepository) DailyStats(day time.Time) (*domain.DailyReport, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *ReportRepository) CategorySales(start, end time.Time) ([]domain.CategorySales, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySales), args.Error(1)
}

func (m *ReportRepository) PopularDishes(start, end *time.Time, limit int) ([]domain.PopularDish, error) {
	args := m.Called(start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularDish), args.Error(1)
}
